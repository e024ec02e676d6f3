package convert

import (
	"iter"

	"github.com/samber/lo"

	"github.com/skdltmxn/khronos-ir/ir"
	"github.com/skdltmxn/khronos-ir/naming"
	"github.com/skdltmxn/khronos-ir/registry"
)

// APIs returns the distinct API tags of all features in order of first
// appearance.
func (r *Result) APIs() []string {
	return lo.Uniq(lo.Map(r.features, func(f *registry.Feature, _ int) string {
		return f.API
	}))
}

// Structs yields every canonical structure once per API tag. Records share
// the canonical entity. Each call starts a fresh walk.
func (r *Result) Structs() iter.Seq[ir.ProfileStruct] {
	return func(yield func(ir.ProfileStruct) bool) {
		for _, api := range r.APIs() {
			for s := range r.structs.Values() {
				if !yield(ir.ProfileStruct{Struct: s, Profile: coreProfile(api)}) {
					return
				}
			}
		}
	}
}

// Enums yields every canonical enum once per API tag.
func (r *Result) Enums() iter.Seq[ir.ProfileEnum] {
	return func(yield func(ir.ProfileEnum) bool) {
		for _, api := range r.APIs() {
			for e := range r.enums.Values() {
				if !yield(ir.ProfileEnum{Enum: e, Profile: coreProfile(api)}) {
					return
				}
			}
		}
	}
}

// Functions yields the commands of each feature, tagged with the feature's
// version, followed by the commands of each extension once per supported
// API tag. Commands missing from the registry are skipped.
func (r *Result) Functions() iter.Seq[ir.ProfileFunction] {
	return func(yield func(ir.ProfileFunction) bool) {
		log := r.ctx.logger()

		for _, f := range r.features {
			category := naming.TrimPrefix(f.Name, r.ctx.Prefix)
			for _, name := range f.CommandNames {
				fn, ok := r.functions.Get(name)
				if !ok {
					log.Debug("skipping missing command", "command", name, "feature", f.Name)
					continue
				}

				rec := ir.ProfileFunction{
					Function: fn,
					Profile: ir.Profile{
						ProfileName:    f.API,
						ProfileVersion: f.Number,
						ExtensionName:  ir.CoreExtension,
					},
					Categories: []string{category},
				}
				if !yield(rec) {
					return
				}
			}
		}

		for _, ext := range r.extensions {
			category := naming.TrimPrefix(ext.Name, r.ctx.Prefix)
			for _, name := range ext.CommandNames {
				fn, ok := r.functions.Get(name)
				if !ok {
					log.Debug("skipping missing command", "command", name, "extension", ext.Name)
					continue
				}

				for _, api := range ext.Supported {
					rec := ir.ProfileFunction{
						Function: fn,
						Profile: ir.Profile{
							ProfileName:   api,
							ExtensionName: category,
						},
						Categories: []string{category},
					}
					if !yield(rec) {
						return
					}
				}
			}
		}
	}
}

// Constants yields the canonical constants in conversion order. Constants
// are not projected per profile.
func (r *Result) Constants() iter.Seq[*ir.Constant] {
	return r.constants.Values()
}

func coreProfile(api string) ir.Profile {
	return ir.Profile{ProfileName: api, ExtensionName: ir.CoreExtension}
}
