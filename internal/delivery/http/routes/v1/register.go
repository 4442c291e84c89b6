package v1

import (
	"hiring-intel/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

type Handlers struct {
	Candidates *handler.CandidateHandler
	Jobs       *handler.JobHandler
	Matches    *handler.MatchHandler
	Recruiters *handler.RecruiterHandler
}

func Register(r fiber.Router, h Handlers) {
	if r == nil {
		return
	}

	RegisterCandidates(r, h.Candidates)
	RegisterRecruiters(r, h.Recruiters, h.Jobs, h.Matches)
}

func RegisterCandidates(r fiber.Router, candidates *handler.CandidateHandler) {
	if candidates == nil {
		return
	}
	candidates.RegisterRoutes(r)
}

// RegisterRecruiters mounts everything scoped to one recruiter. The recruiter
// id is only an existence lookup; there is no authentication.
func RegisterRecruiters(r fiber.Router, recruiters *handler.RecruiterHandler, jobs *handler.JobHandler, matches *handler.MatchHandler) {
	grp := r.Group("/recruiters/:recruiter_id")
	if recruiters != nil {
		recruiters.RegisterRoutes(grp)
	}
	if jobs != nil {
		jobs.RegisterRoutes(grp)
	}
	if matches != nil {
		matches.RegisterRoutes(grp)
	}
}
