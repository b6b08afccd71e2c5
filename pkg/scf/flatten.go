package scf

import (
	"strings"

	"github.com/beevik/etree"
	"go.uber.org/zap"
)

// Identity is derived from the first three distName segments: two for the
// shared network-element prefix, one for the object's leaf name.
const pathSegments = 3

// Flattener reduces plan documents to inventories. A single flattener is used
// for all documents of one run so that the run context captures come from
// whichever document is processed first.
type Flattener struct {
	ctx       *RunContext
	rootClass string
	excluded  map[string]struct{}
}

// NewFlattener creates a flattener. rootClass is the schema root whose single
// object is kept under its full distName; excludedLeaves are the structural
// container names whose entries describe the element tree rather than
// configurable objects.
func NewFlattener(ctx *RunContext, rootClass string, excludedLeaves []string) *Flattener {
	excluded := make(map[string]struct{}, len(excludedLeaves))
	for _, leaf := range excludedLeaves {
		excluded[leaf] = struct{}{}
	}
	return &Flattener{
		ctx:       ctx,
		rootClass: rootClass,
		excluded:  excluded,
	}
}

// Flatten walks every managedObject element in doc, at any nesting depth, and
// returns the resulting inventory. Elements without a class attribute and
// elements whose distName yields no identity are skipped; a duplicate
// (class, leaf) key is overwritten by the later occurrence.
func (f *Flattener) Flatten(doc *etree.Document) *Inventory {
	inv := NewInventory()
	for _, el := range ManagedObjects(doc) {
		class := el.SelectAttrValue(attrClass, "")
		if class == "" {
			zap.S().Debugw("skipping managedObject without class",
				"distName", el.SelectAttrValue(attrDistName, ""))
			continue
		}
		distName := el.SelectAttrValue(attrDistName, "")
		leaf, ok := f.identify(class, distName)
		if !ok {
			zap.S().Debugw("skipping structural element", "class", class, "distName", distName)
			continue
		}

		obj := &ManagedObject{
			Class:     class,
			Operation: el.SelectAttrValue(attrOperation, DefaultOperation),
		}
		for _, child := range el.ChildElements() {
			if child.Tag != tagParam {
				continue
			}
			name := child.SelectAttrValue(attrName, "")
			if name == "" {
				continue
			}
			if text := child.Text(); text != "" {
				obj.Params.Set(name, text)
			}
		}

		if id := el.SelectAttrValue(attrID, ""); id != "" {
			f.ctx.captureDefaultID(id)
		}
		if version := el.SelectAttrValue(attrVersion, ""); version != "" {
			f.ctx.captureVersion(version)
		}
		inv.Put(class, leaf, obj)
	}
	return inv
}

// identify reduces distName to the object's leaf name. The distName is split
// on "/" into at most three segments: fewer than three segments, or a trailing
// segment naming an excluded structural container, yields no identity. The
// schema root object bypasses both rules and keeps its full distName. The
// first successful reduction captures the shared prefix on the run context.
func (f *Flattener) identify(class, distName string) (string, bool) {
	if class == f.rootClass {
		return distName, true
	}
	segments := strings.SplitN(distName, "/", pathSegments)
	if len(segments) != pathSegments {
		return "", false
	}
	leaf := segments[len(segments)-1]
	if _, structural := f.excluded[leaf]; structural {
		return "", false
	}
	f.ctx.captureRootPrefix(segments[0] + "/" + segments[1])
	return leaf, true
}
