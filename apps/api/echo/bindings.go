package echoapi

type (
	DestroyMultipleRequest struct {
		IDs []string `json:"ids" query:"id"`
	}

	SuccessResponse struct {
		Success string `json:"success"`
	}
)
