package transport

// RenderContentRequest carries page content containing phone shortcodes.
type RenderContentRequest struct {
	Content string `json:"content" validate:"max=1048576"`
}

// RenderContentResponse carries the content with shortcodes expanded.
type RenderContentResponse struct {
	Content string `json:"content"`
}

// RenderNumberRequest mirrors the shortcode attributes for a single number.
// Pointer fields distinguish an absent attribute from an empty one.
type RenderNumberRequest struct {
	Number  *string `form:"number" validate:"omitempty,max=256"`
	Region  *string `form:"region" validate:"omitempty,max=8"`
	Format  *string `form:"format" validate:"omitempty,max=32"`
	Linkify *string `form:"linkify" validate:"omitempty,max=16"`
}

// RenderNumberResponse is the rendered output for one number.
type RenderNumberResponse struct {
	Output string `json:"output"`
}

// FormatExample is one entry of the admin format preview.
type FormatExample struct {
	Format  int    `json:"format"`
	Token   string `json:"token"`
	Label   string `json:"label"`
	Example string `json:"example"`
}

// PreviewResponse lists an example number rendered in every format.
type PreviewResponse struct {
	Region   string          `json:"region"`
	Examples []FormatExample `json:"examples"`
}

// PreviewRequest selects the region for the admin format preview.
type PreviewRequest struct {
	Region string `form:"region" validate:"omitempty,region_code"`
}
