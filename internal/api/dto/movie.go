package dto

// MovieForm represents the create and edit item forms. Length limits are
// enforced by the domain so both forms fail with the same message.
type MovieForm struct {
	Title string `form:"title"`
	Year  string `form:"year"`
}
