package scf

// DefaultOperation is assumed for managed objects whose source element does
// not carry an operation attribute.
const DefaultOperation = "create"

// ManagedObject is a single configuration object taken from a plan document.
// Objects are identified by their (class, leaf name) pair, which is tracked by
// the Inventory holding them rather than on the object itself.
type ManagedObject struct {
	Class     string
	Operation string
	Params    Params
}

// Clone returns a deep copy of the object. Mappings never share objects, so
// every transfer between inventories goes through Clone.
func (o *ManagedObject) Clone() *ManagedObject {
	return &ManagedObject{
		Class:     o.Class,
		Operation: o.Operation,
		Params:    o.Params.Clone(),
	}
}

// Params holds an object's parameter values keyed by parameter name,
// preserving first-insertion order for deterministic serialization.
// The zero value is ready to use.
type Params struct {
	names  []string
	values map[string]string
}

// Set stores a parameter value. Setting an existing name overwrites the value
// but keeps the name's original position.
func (p *Params) Set(name, value string) {
	if p.values == nil {
		p.values = make(map[string]string)
	}
	if _, ok := p.values[name]; !ok {
		p.names = append(p.names, name)
	}
	p.values[name] = value
}

// Get returns the value stored under name.
func (p *Params) Get(name string) (string, bool) {
	value, ok := p.values[name]
	return value, ok
}

// Names returns the parameter names in insertion order.
func (p *Params) Names() []string {
	names := make([]string, len(p.names))
	copy(names, p.names)
	return names
}

// Len returns the number of stored parameters.
func (p *Params) Len() int {
	return len(p.names)
}

// Clone returns an independent copy of the parameter set.
func (p *Params) Clone() Params {
	clone := Params{}
	for _, name := range p.names {
		clone.Set(name, p.values[name])
	}
	return clone
}

// Inventory is the flattened form of a plan document: a two-level mapping
// from class name to leaf name to managed object. Both levels preserve
// insertion order so that merged plans and reports come out deterministic.
type Inventory struct {
	classes []string
	leaves  map[string][]string
	objects map[string]map[string]*ManagedObject
}

// NewInventory returns an empty inventory.
func NewInventory() *Inventory {
	return &Inventory{
		leaves:  make(map[string][]string),
		objects: make(map[string]map[string]*ManagedObject),
	}
}

// Put stores obj under (class, leaf). A later write to an existing key
// replaces the object but keeps the key's original position.
func (inv *Inventory) Put(class, leaf string, obj *ManagedObject) {
	if _, ok := inv.objects[class]; !ok {
		inv.classes = append(inv.classes, class)
		inv.objects[class] = make(map[string]*ManagedObject)
	}
	if _, ok := inv.objects[class][leaf]; !ok {
		inv.leaves[class] = append(inv.leaves[class], leaf)
	}
	inv.objects[class][leaf] = obj
}

// Get returns the object stored under (class, leaf).
func (inv *Inventory) Get(class, leaf string) (*ManagedObject, bool) {
	obj, ok := inv.objects[class][leaf]
	return obj, ok
}

// HasClass reports whether the inventory holds any object of class.
func (inv *Inventory) HasClass(class string) bool {
	_, ok := inv.objects[class]
	return ok
}

// Classes returns the class names in insertion order.
func (inv *Inventory) Classes() []string {
	classes := make([]string, len(inv.classes))
	copy(classes, inv.classes)
	return classes
}

// Leaves returns the leaf names of class in insertion order.
func (inv *Inventory) Leaves(class string) []string {
	leaves := make([]string, len(inv.leaves[class]))
	copy(leaves, inv.leaves[class])
	return leaves
}

// TotalObjects returns the number of objects across all classes.
func (inv *Inventory) TotalObjects() int {
	total := 0
	for _, leaves := range inv.leaves {
		total += len(leaves)
	}
	return total
}

// Clone returns a deep copy of the inventory; no objects are shared with the
// original.
func (inv *Inventory) Clone() *Inventory {
	clone := NewInventory()
	for _, class := range inv.classes {
		for _, leaf := range inv.leaves[class] {
			clone.Put(class, leaf, inv.objects[class][leaf].Clone())
		}
	}
	return clone
}

// ReplaceClass discards whatever the inventory holds under class and installs
// deep copies of src's objects for that class in src's order. An existing
// class keeps its position; a new one is appended.
func (inv *Inventory) ReplaceClass(class string, src *Inventory) {
	if _, ok := inv.objects[class]; !ok {
		inv.classes = append(inv.classes, class)
	}
	inv.leaves[class] = nil
	inv.objects[class] = make(map[string]*ManagedObject)
	for _, leaf := range src.Leaves(class) {
		obj, ok := src.Get(class, leaf)
		if !ok {
			continue
		}
		inv.Put(class, leaf, obj.Clone())
	}
}
