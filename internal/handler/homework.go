package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/GVarya/MA-homework-service/internal/service"
)

type HomeworkHandler struct {
	homeworks service.HomeworkServiceInterface
	solutions service.SolutionServiceInterface
	progress  service.ProgressServiceInterface
}

func NewHomeworkHandler(
	homeworks service.HomeworkServiceInterface,
	solutions service.SolutionServiceInterface,
	progress service.ProgressServiceInterface,
) *HomeworkHandler {
	return &HomeworkHandler{
		homeworks: homeworks,
		solutions: solutions,
		progress:  progress,
	}
}

func (h *HomeworkHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/homeworks", func(r chi.Router) {
		r.Get("/", h.ListHomeworks)
		r.Post("/", h.CreateHomework)
		r.Post("/publish", h.PublishHomework)
		r.Get("/course/{course_id}", h.ListHomeworksByCourse)

		r.Post("/solutions/submit", h.SubmitSolution)
		r.Post("/solutions/return", h.ReturnSolution)
		r.Post("/solutions/grade", h.GradeSolution)
		r.Get("/solutions/student/{student_id}", h.ListSolutionsByStudent)
		r.Get("/solutions/homework/{homework_id}", h.ListSolutionsByHomework)

		r.Get("/progress/student/{student_id}", h.GetProgress)
		r.Post("/progress/update/{student_id}", h.UpdateProgress)

		r.Get("/{homework_id}", h.GetHomework)
	})
}

func pathID(key string) func(r *http.Request, req *idRequest) error {
	return func(r *http.Request, req *idRequest) error {
		id, err := parseUUIDParam(r, key)
		if err != nil {
			return err
		}
		req.ID = id
		return nil
	}
}

func (h *HomeworkHandler) CreateHomework(w http.ResponseWriter, r *http.Request) {
	Handle(func(ctx context.Context, req *CreateHomeworkRequest) (HomeworkResponse, error) {
		hw, err := h.homeworks.Create(ctx, uuid.MustParse(req.CourseID), req.Title, req.Description)
		if err != nil {
			return HomeworkResponse{}, err
		}
		return homeworkResponse(hw), nil
	}, nil, true, http.StatusCreated)(w, r)
}

func (h *HomeworkHandler) PublishHomework(w http.ResponseWriter, r *http.Request) {
	Handle(func(ctx context.Context, req *PublishHomeworkRequest) (HomeworkResponse, error) {
		hw, err := h.homeworks.Publish(ctx, uuid.MustParse(req.HomeworkID))
		if err != nil {
			return HomeworkResponse{}, err
		}
		return homeworkResponse(hw), nil
	}, nil, true, http.StatusOK)(w, r)
}

func (h *HomeworkHandler) ListHomeworks(w http.ResponseWriter, r *http.Request) {
	Handle(func(ctx context.Context, _ *emptyRequest) ([]HomeworkResponse, error) {
		hws, err := h.homeworks.List(ctx)
		if err != nil {
			return nil, err
		}
		return homeworkResponses(hws), nil
	}, nil, false, http.StatusOK)(w, r)
}

func (h *HomeworkHandler) ListHomeworksByCourse(w http.ResponseWriter, r *http.Request) {
	Handle(func(ctx context.Context, req *idRequest) ([]HomeworkResponse, error) {
		hws, err := h.homeworks.ListByCourse(ctx, req.ID)
		if err != nil {
			return nil, err
		}
		return homeworkResponses(hws), nil
	}, pathID("course_id"), false, http.StatusOK)(w, r)
}

func (h *HomeworkHandler) GetHomework(w http.ResponseWriter, r *http.Request) {
	Handle(func(ctx context.Context, req *idRequest) (HomeworkResponse, error) {
		hw, err := h.homeworks.Get(ctx, req.ID)
		if err != nil {
			return HomeworkResponse{}, err
		}
		return homeworkResponse(hw), nil
	}, pathID("homework_id"), false, http.StatusOK)(w, r)
}

func (h *HomeworkHandler) SubmitSolution(w http.ResponseWriter, r *http.Request) {
	Handle(func(ctx context.Context, req *SubmitSolutionRequest) (SolutionResponse, error) {
		sol, err := h.solutions.Submit(ctx, uuid.MustParse(req.HomeworkID), uuid.MustParse(req.StudentID), req.Answer)
		if err != nil {
			return SolutionResponse{}, err
		}
		return solutionResponse(sol), nil
	}, nil, true, http.StatusCreated)(w, r)
}

func (h *HomeworkHandler) ReturnSolution(w http.ResponseWriter, r *http.Request) {
	Handle(func(ctx context.Context, req *ReturnSolutionRequest) (SolutionResponse, error) {
		sol, err := h.solutions.ReturnForRework(ctx, uuid.MustParse(req.SolutionID), req.Feedback)
		if err != nil {
			return SolutionResponse{}, err
		}
		return solutionResponse(sol), nil
	}, nil, true, http.StatusOK)(w, r)
}

func (h *HomeworkHandler) GradeSolution(w http.ResponseWriter, r *http.Request) {
	Handle(func(ctx context.Context, req *GradeSolutionRequest) (SolutionResponse, error) {
		sol, err := h.solutions.Grade(ctx, uuid.MustParse(req.SolutionID), *req.Grade, req.Feedback)
		if err != nil {
			return SolutionResponse{}, err
		}
		return solutionResponse(sol), nil
	}, nil, true, http.StatusOK)(w, r)
}

func (h *HomeworkHandler) ListSolutionsByStudent(w http.ResponseWriter, r *http.Request) {
	Handle(func(ctx context.Context, req *idRequest) ([]SolutionResponse, error) {
		sols, err := h.solutions.ListByStudent(ctx, req.ID)
		if err != nil {
			return nil, err
		}
		return solutionResponses(sols), nil
	}, pathID("student_id"), false, http.StatusOK)(w, r)
}

func (h *HomeworkHandler) ListSolutionsByHomework(w http.ResponseWriter, r *http.Request) {
	Handle(func(ctx context.Context, req *idRequest) ([]SolutionResponse, error) {
		sols, err := h.solutions.ListByHomework(ctx, req.ID)
		if err != nil {
			return nil, err
		}
		return solutionResponses(sols), nil
	}, pathID("homework_id"), false, http.StatusOK)(w, r)
}

func (h *HomeworkHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	Handle(func(ctx context.Context, req *idRequest) (ProgressResponse, error) {
		p, err := h.progress.GetByStudent(ctx, req.ID)
		if err != nil {
			return ProgressResponse{}, err
		}
		return progressResponse(p), nil
	}, pathID("student_id"), false, http.StatusOK)(w, r)
}

func (h *HomeworkHandler) UpdateProgress(w http.ResponseWriter, r *http.Request) {
	Handle(func(ctx context.Context, req *idRequest) (ProgressResponse, error) {
		p, err := h.progress.Recompute(ctx, req.ID)
		if err != nil {
			return ProgressResponse{}, err
		}
		return progressResponse(p), nil
	}, pathID("student_id"), false, http.StatusOK)(w, r)
}
