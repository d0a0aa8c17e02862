package rbac

import "github.com/KATBlackCoder/rapportflow/internal/domain"

type EnforceRequest struct {
	Resource string `json:"resource" binding:"required,max=50"`
	Action   string `json:"action" binding:"required,max=50"`
}

type EnforceResponse struct {
	Allowed bool `json:"allowed"`
}

type PermissionsResponse struct {
	Position    *domain.Position    `json:"position"`
	Permissions []domain.PolicyRule `json:"permissions"`
}
