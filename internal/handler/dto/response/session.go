package response

type SessionResponse struct {
	Token string `json:"token"`
}
