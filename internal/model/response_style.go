package model

// ResponseStyle tags the tone of a generated reply.
type ResponseStyle string

const (
	StyleEnthusiastic ResponseStyle = "enthusiastic"
	StyleEmpathetic   ResponseStyle = "empathetic"
	StyleHelpful      ResponseStyle = "helpful"
	StyleNeutral      ResponseStyle = "neutral"
)
