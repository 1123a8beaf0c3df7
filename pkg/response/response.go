package response

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// ResultResponse reports a discriminated business outcome ("success",
// "area_manager_missing", ...) rather than a transport error.
type ResultResponse struct {
	Result string `json:"result"`
	ID     int64  `json:"id,omitempty"`
}

type TokenResponse struct {
	Token string `json:"token"`
	ID    uint   `json:"user_id"`
	Name  string `json:"name"`
	Role  int    `json:"role_id"`
	Zone  string `json:"zone"`
}
