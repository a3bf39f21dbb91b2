package htmr

// resolveTransform returns the override function for a tag, or nil when the
// structural conversion output is to be used unmodified. Lookup order: exact
// tag name first, then the default key.
func resolveTransform(tag string, o *Options) TransformFunc {
	if o == nil || o.Transform == nil {
		return nil
	}
	if fn, ok := o.Transform[tag]; ok {
		return fn
	}
	if fn, ok := o.Transform[DefaultTransformKey]; ok {
		return fn
	}
	return nil
}
