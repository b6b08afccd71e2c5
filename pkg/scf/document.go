package scf

import (
	"fmt"

	"github.com/beevik/etree"
)

// RAML 2.1 plan document vocabulary.
const (
	tagRAML          = "raml"
	tagCMData        = "cmData"
	tagManagedObject = "managedObject"
	tagParam         = "p"

	attrClass     = "class"
	attrDistName  = "distName"
	attrVersion   = "version"
	attrID        = "id"
	attrOperation = "operation"
	attrName      = "name"

	ramlVersion   = "2.1"
	ramlNamespace = "raml21.xsd"
)

// Load reads and parses a plan document from path.
func Load(path string) (*etree.Document, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return nil, fmt.Errorf("read plan %s: %w", path, err)
	}
	return doc, nil
}

// ManagedObjects returns every managedObject element of doc in document
// order, regardless of nesting depth or namespace prefix.
func ManagedObjects(doc *etree.Document) []*etree.Element {
	var objects []*etree.Element
	var walk func(*etree.Element)
	walk = func(el *etree.Element) {
		for _, child := range el.ChildElements() {
			if child.Tag == tagManagedObject {
				objects = append(objects, child)
			}
			walk(child)
		}
	}
	walk(&doc.Element)
	return objects
}

// BuildOptions control how a merged inventory is serialized back into a plan
// document.
type BuildOptions struct {
	// Version is stamped on every serialized object's version attribute.
	Version string
	// PlanName becomes the cmData name attribute.
	PlanName string
	// RootClass objects keep their leaf name as the full distName instead of
	// being placed under the shared prefix.
	RootClass string
}

// BuildPlan serializes inv into a new plan document. Objects appear in
// inventory order under the shared root prefix captured in ctx, each with the
// uniform plan version and the run's default id.
func BuildPlan(inv *Inventory, ctx *RunContext, opts BuildOptions) *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	raml := doc.CreateElement(tagRAML)
	raml.CreateAttr(attrVersion, ramlVersion)
	raml.CreateAttr("xmlns", ramlNamespace)
	cmData := raml.CreateElement(tagCMData)
	cmData.CreateAttr("type", "plan")
	cmData.CreateAttr("scope", "all")
	cmData.CreateAttr(attrName, opts.PlanName)

	for _, class := range inv.Classes() {
		for _, leaf := range inv.Leaves(class) {
			obj, ok := inv.Get(class, leaf)
			if !ok {
				continue
			}
			mo := cmData.CreateElement(tagManagedObject)
			mo.CreateAttr(attrClass, obj.Class)
			mo.CreateAttr(attrVersion, opts.Version)
			mo.CreateAttr(attrDistName, objectDistName(ctx, class, leaf, opts.RootClass))
			mo.CreateAttr(attrID, ctx.DefaultID())
			operation := obj.Operation
			if operation == "" {
				operation = DefaultOperation
			}
			mo.CreateAttr(attrOperation, operation)
			for _, name := range obj.Params.Names() {
				value, _ := obj.Params.Get(name)
				p := mo.CreateElement(tagParam)
				p.CreateAttr(attrName, name)
				p.SetText(value)
			}
		}
	}
	doc.Indent(2)
	return doc
}

// objectDistName reconstructs an object's full distName: the captured shared
// prefix plus its leaf, except for the schema root object whose leaf already
// is the full path.
func objectDistName(ctx *RunContext, class, leaf, rootClass string) string {
	if class == rootClass {
		return leaf
	}
	if prefix := ctx.RootPrefix(); prefix != "" {
		return prefix + "/" + leaf
	}
	return leaf
}

// WritePlan writes doc to path.
func WritePlan(doc *etree.Document, path string) error {
	if err := doc.WriteToFile(path); err != nil {
		return fmt.Errorf("write plan %s: %w", path, err)
	}
	return nil
}
