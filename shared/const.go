package shared

const (
	UserID    = "user_id"
	UserEmail = "user_email"

	EndpointReply = "reply"
	EndpointAudio = "audio"

	ServiceName = "fluentify"
)
