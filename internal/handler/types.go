package handler

type attemptRequest struct {
	ScenarioID string `json:"scenario_id" binding:"required,nonblank"`
	Action     string `json:"action" binding:"required"`
}

type createUserRequest struct {
	FirebaseUID string `json:"firebase_uid" binding:"required,nonblank"`
	Email       string `json:"email" binding:"required,email"`
}
