package handler

// Transient messages shown on the next rendered page.
const (
	MsgInvalidInput       = "Invalid input."
	MsgItemCreated        = "Item Created."
	MsgItemUpdated        = "Item updated."
	MsgItemDeleted        = "Item deleted."
	MsgSettingsUpdated    = "Settings updated."
	MsgLoginSuccess       = "Login success."
	MsgInvalidCredentials = "Invalid username or password."
	MsgGoodbye            = "Goodbye."
)
