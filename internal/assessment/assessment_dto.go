package assessment

type OpenAssessmentRequest struct {
	UserID       string `json:"userId" binding:"required,uuid"`
	SupervisorID string `json:"supervisorId" binding:"required,uuid"`
}

type UploadCertificateRequest struct {
	CertificateFile string `json:"certificateFile" binding:"required"`
}

type SubmitAssessmentRequest struct {
	Score int     `json:"score" binding:"min=0,max=100"`
	Notes *string `json:"notes"`
}

type SupervisorDecisionRequest struct {
	Decision string  `json:"decision" binding:"required,oneof=proceed_to_phase_2 terminate put_on_hold"`
	Comments *string `json:"comments"`
}

type HRDecisionRequest struct {
	Decision string  `json:"decision" binding:"required,oneof=approve reject request_changes"`
	Comments *string `json:"comments"`
}

type AssessmentResponse struct {
	ID           string `json:"id"`
	UserID       string `json:"userId"`
	SupervisorID string `json:"supervisorId"`
	Status       string `json:"status"`

	CertificateFile       *string `json:"certificateFile,omitempty"`
	CertificateUploadDate *string `json:"certificateUploadDate,omitempty"`

	AssessmentDate  *string `json:"assessmentDate,omitempty"`
	AssessmentNotes *string `json:"assessmentNotes,omitempty"`
	AssessmentScore *int    `json:"assessmentScore,omitempty"`

	SupervisorDecision *string `json:"supervisorDecision,omitempty"`
	SupervisorComments *string `json:"supervisorComments,omitempty"`
	DecisionDate       *string `json:"decisionDate,omitempty"`

	HRDecision         *string `json:"hrDecision,omitempty"`
	HRDecisionComments *string `json:"hrDecisionComments,omitempty"`
	HRDecisionDate     *string `json:"hrDecisionDate,omitempty"`
}
