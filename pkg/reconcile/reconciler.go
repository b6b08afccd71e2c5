// Package reconcile merges a base (older) plan inventory onto a skeletal
// (newer) one and classifies every object by its presence in each.
package reconcile

import (
	"go.uber.org/zap"

	"github.com/seshasai-1827/File-generation-proj/pkg/config"
	"github.com/seshasai-1827/File-generation-proj/pkg/scf"
)

// Pair identifies one managed object by its class and leaf name.
type Pair struct {
	Class string
	Leaf  string
}

// ValueChange records one parameter whose newer-schema default was replaced
// by the value from the base plan.
type ValueChange struct {
	Class   string
	Leaf    string
	Param   string
	Default string // value the newer schema shipped with
	Merged  string // value inherited from the base plan
}

// Result is the outcome of one reconciliation run.
type Result struct {
	// Final is the merged inventory: the skeletal structure with base values
	// merged in and base-only objects carried over.
	Final *scf.Inventory
	// Common lists objects present in both inputs, in discovery order.
	Common []Pair
	// Carried lists base objects copied verbatim into Final, in discovery
	// order.
	Carried []Pair
	// Changes lists every parameter overwrite applied to a common object.
	Changes []ValueChange
}

// Reconciler merges plan inventories. The skeletal inventory is the
// structural authority: it decides which classes, objects and parameters
// exist. The base inventory is authoritative only for the values of
// parameters that still exist.
type Reconciler struct {
	renames    config.RenameConfig
	alarmClass string
}

// NewReconciler creates a reconciler from the run configuration.
func NewReconciler(cfg *config.Config) *Reconciler {
	return &Reconciler{
		renames:    cfg.Renames,
		alarmClass: cfg.Schema.AlarmClass,
	}
}

// Reconcile builds the merged inventory from base and skeletal. Final starts
// as a deep copy of skeletal; objects present in both inputs have their
// parameter values overwritten from base; base objects whose class survives
// but whose leaf does not are carried over verbatim; classes absent from
// skeletal are dropped entirely. A non-empty alarms inventory replaces the
// alarm class wholesale, discarding any prior merge outcome for it.
func (r *Reconciler) Reconcile(base, skeletal, alarms *scf.Inventory) *Result {
	res := &Result{Final: skeletal.Clone()}
	matched := make(map[Pair]struct{})

	for _, class := range skeletal.Classes() {
		if !base.HasClass(class) {
			continue
		}
		for _, leaf := range skeletal.Leaves(class) {
			baseLeaf := r.renames.OldLeaf(leaf)
			baseObj, ok := base.Get(class, baseLeaf)
			if !ok {
				continue
			}
			finalObj, _ := res.Final.Get(class, leaf)
			matched[Pair{class, baseLeaf}] = struct{}{}
			res.Common = append(res.Common, Pair{class, leaf})
			r.mergeParams(res, class, leaf, baseObj, finalObj)
		}
		for _, baseLeaf := range base.Leaves(class) {
			if _, ok := skeletal.Get(class, baseLeaf); ok {
				continue
			}
			if _, ok := matched[Pair{class, baseLeaf}]; ok {
				continue
			}
			baseObj, _ := base.Get(class, baseLeaf)
			res.Final.Put(class, baseLeaf, baseObj.Clone())
			res.Carried = append(res.Carried, Pair{class, baseLeaf})
		}
	}

	if alarms != nil && alarms.TotalObjects() > 0 {
		res.Final.ReplaceClass(r.alarmClass, alarms)
		zap.S().Debugw("replaced alarm class from imported table",
			"class", r.alarmClass, "objects", alarms.TotalObjects())
	}
	return res
}

// mergeParams overwrites finalObj's parameter values with those of baseObj
// wherever the (rename-mapped) parameter exists in both. Parameters only the
// newer schema knows keep their defaults; parameters only the base object
// knows are dropped.
func (r *Reconciler) mergeParams(res *Result, class, leaf string, baseObj, finalObj *scf.ManagedObject) {
	consumed := make(map[string]struct{})
	for _, name := range finalObj.Params.Names() {
		baseName := r.renames.OldParam(leaf, name)
		baseValue, ok := baseObj.Params.Get(baseName)
		if !ok {
			continue
		}
		consumed[baseName] = struct{}{}
		current, _ := finalObj.Params.Get(name)
		if current == baseValue {
			continue
		}
		finalObj.Params.Set(name, baseValue)
		res.Changes = append(res.Changes, ValueChange{
			Class:   class,
			Leaf:    leaf,
			Param:   name,
			Default: current,
			Merged:  baseValue,
		})
	}

	var dropped []string
	for _, name := range baseObj.Params.Names() {
		if _, ok := consumed[name]; !ok {
			dropped = append(dropped, name)
		}
	}
	if len(dropped) > 0 {
		zap.S().Debugw("dropping parameters absent from the newer schema",
			"class", class, "object", leaf, "parameters", dropped)
	}
}
