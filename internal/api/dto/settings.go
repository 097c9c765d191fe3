package dto

// SettingsForm represents the owner settings form
type SettingsForm struct {
	Name string `form:"name"`
}
