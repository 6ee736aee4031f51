package teams

type AddRequest struct {
	Name string `json:"name" binding:"required"`
}
