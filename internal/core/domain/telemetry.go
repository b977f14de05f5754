package domain

// VertexStatus represents the lifecycle state of a recorded step.
type VertexStatus string

const (
	// VertexStatusRunning indicates the step is executing.
	VertexStatusRunning VertexStatus = "running"
	// VertexStatusCompleted indicates the step finished successfully.
	VertexStatusCompleted VertexStatus = "completed"
	// VertexStatusFailed indicates the step returned an error.
	VertexStatusFailed VertexStatus = "failed"
)

// StatusOf returns the terminal status for a step result.
func StatusOf(err error) VertexStatus {
	if err != nil {
		return VertexStatusFailed
	}
	return VertexStatusCompleted
}
