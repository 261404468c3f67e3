package rbac

type EnforceRequest struct {
	Resource string `form:"resource" binding:"required"`
	Action   string `form:"action" binding:"required"`
}

type EnforceResponse struct {
	Role    string `json:"role"`
	Allowed bool   `json:"allowed"`
}

type Permission struct {
	Resource string `json:"resource"`
	Action   string `json:"action"`
}
