package reconcile

import "github.com/seshasai-1827/File-generation-proj/pkg/scf"

// Diff classifies objects by comparing the base inventory against the final
// merged one, independently of how the merge was performed: an object is new
// when only final has it and deprecated when only base has it. objectRenames
// maps newer leaf names to older ones so that a renamed object counts as the
// same object on both sides. Both slices follow the inventory iteration
// order of the side they were found on.
func Diff(base, final *scf.Inventory, objectRenames map[string]string) (newPairs, deprecated []Pair) {
	renamedTo := make(map[string]string, len(objectRenames))
	for newer, older := range objectRenames {
		renamedTo[older] = newer
	}

	for _, class := range final.Classes() {
		for _, leaf := range final.Leaves(class) {
			baseLeaf := leaf
			if older, ok := objectRenames[leaf]; ok {
				baseLeaf = older
			}
			if _, ok := base.Get(class, baseLeaf); !ok {
				newPairs = append(newPairs, Pair{Class: class, Leaf: leaf})
			}
		}
	}

	for _, class := range base.Classes() {
		for _, leaf := range base.Leaves(class) {
			if _, ok := final.Get(class, leaf); ok {
				continue
			}
			if newer, ok := renamedTo[leaf]; ok {
				if _, renamed := final.Get(class, newer); renamed {
					continue
				}
			}
			deprecated = append(deprecated, Pair{Class: class, Leaf: leaf})
		}
	}
	return newPairs, deprecated
}
