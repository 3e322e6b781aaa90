package jobs

import "time"

// JobResponse is the outward-facing representation of a job.
type JobResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Status      string    `json:"status"`
	Tags        []string  `json:"tags"`
	Order       int       `json:"order"`
	Description string    `json:"description,omitempty"`
	Location    string    `json:"location,omitempty"`
	Department  string    `json:"department,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ListResponse is a paginated page of jobs.
type ListResponse struct {
	Data       []JobResponse `json:"data"`
	Total      int           `json:"total"`
	Page       int           `json:"page"`
	PageSize   int           `json:"pageSize"`
	TotalPages int           `json:"totalPages"`
}

func toResponse(job Job) JobResponse {
	tags := job.Tags
	if tags == nil {
		tags = []string{}
	}
	return JobResponse{
		ID:          job.ID,
		Title:       job.Title,
		Slug:        job.Slug,
		Status:      job.Status,
		Tags:        tags,
		Order:       job.Order,
		Description: job.Description,
		Location:    job.Location,
		Department:  job.Department,
		CreatedAt:   job.CreatedAt,
		UpdatedAt:   job.UpdatedAt,
	}
}

func toListResponse(result ListResult) ListResponse {
	data := make([]JobResponse, 0, len(result.Data))
	for _, job := range result.Data {
		data = append(data, toResponse(job))
	}
	return ListResponse{
		Data:       data,
		Total:      result.Total,
		Page:       result.Page,
		PageSize:   result.PageSize,
		TotalPages: result.TotalPages,
	}
}
