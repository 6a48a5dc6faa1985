package domain

// Invocation is one use of the phone shortcode. Nil pointers mean the
// attribute was absent; Content is nil for self-closing tags.
type Invocation struct {
	Content    *string
	Positional []string
	Number     *string
	Region     *string
	Format     *string
	Linkify    *string
}

// EffectiveParameters is a fully resolved render request. Region stays
// optional because the library may infer it from a leading '+'.
type EffectiveParameters struct {
	Input   string
	Region  *string
	Format  Format
	Linkify bool
}

// RegionCode returns the region passed to the library ("" when absent).
func (p EffectiveParameters) RegionCode() string {
	if p.Region == nil {
		return ""
	}
	return *p.Region
}
