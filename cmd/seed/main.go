package main

// Populate a development database with sample hiring data:
//   go run ./cmd/seed

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strings"

	"talentflow-backend/internal/assessments"
	"talentflow-backend/internal/bootstrap"
	"talentflow-backend/internal/candidates"
	"talentflow-backend/internal/jobs"
	"talentflow-backend/internal/shared/config"
)

var jobTitles = []string{
	"Senior Frontend Engineer",
	"Backend Engineer",
	"Full Stack Developer",
	"DevOps Engineer",
	"Data Engineer",
	"Engineering Manager",
	"Product Designer",
	"QA Engineer",
	"Site Reliability Engineer",
	"Mobile Engineer",
	"Platform Engineer",
	"Security Engineer",
	"Machine Learning Engineer",
	"Technical Writer",
	"Solutions Architect",
	"Database Administrator",
	"Cloud Engineer",
	"Systems Analyst",
	"Release Manager",
	"UX Researcher",
	"Staff Engineer",
	"Engineering Intern",
	"Support Engineer",
	"Data Analyst",
	"Product Manager",
}

var tagPool = []string{"remote", "full-time", "contract", "senior", "junior", "hybrid", "urgent"}

var firstNames = []string{
	"Alex", "Jordan", "Taylor", "Morgan", "Casey", "Riley", "Avery",
	"Quinn", "Dana", "Jamie", "Robin", "Sam", "Drew", "Cameron", "Skyler",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller",
	"Davis", "Martinez", "Lopez", "Wilson", "Anderson", "Thomas", "Moore",
}

var stagePool = []string{
	candidates.StageApplied, candidates.StageApplied, candidates.StageApplied,
	candidates.StageScreen, candidates.StageScreen,
	candidates.StageTech,
	candidates.StageOffer,
	candidates.StageHired,
	candidates.StageRejected,
}

func main() {
	cfg := config.Load()
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		log.Printf("DATABASE_URL is required to seed")
		os.Exit(1)
	}

	app, err := bootstrap.Build(cfg)
	if err != nil {
		log.Fatalf("bootstrap error: %v", err)
	}
	if app.DB == nil {
		log.Fatalf("seed requires a reachable database")
	}
	defer app.DB.Close()

	ctx := context.Background()
	rng := rand.New(rand.NewSource(42))

	createdJobs := seedJobs(ctx, app, rng)
	seedCandidates(ctx, app, rng, createdJobs)
	seedAssessments(ctx, app, createdJobs)

	log.Printf("seeded %d jobs", len(createdJobs))
}

func seedJobs(ctx context.Context, app *bootstrap.App, rng *rand.Rand) []jobs.Job {
	out := make([]jobs.Job, 0, len(jobTitles))
	for i, title := range jobTitles {
		status := jobs.StatusActive
		if i%5 == 4 {
			status = jobs.StatusArchived
		}
		tags := []string{tagPool[rng.Intn(len(tagPool))], tagPool[rng.Intn(len(tagPool))]}

		job, err := app.JobsService.Create(ctx, jobs.CreateInput{
			Title:  title,
			Status: status,
			Tags:   tags,
		})
		if err != nil {
			log.Fatalf("seed job %q: %v", title, err)
		}
		out = append(out, job)
	}
	return out
}

func seedCandidates(ctx context.Context, app *bootstrap.App, rng *rand.Rand, createdJobs []jobs.Job) {
	for i := 0; i < 60; i++ {
		first := firstNames[rng.Intn(len(firstNames))]
		last := lastNames[rng.Intn(len(lastNames))]
		job := createdJobs[rng.Intn(len(createdJobs))]
		stage := stagePool[rng.Intn(len(stagePool))]

		candidate, err := app.CandidatesService.Create(ctx, candidates.CreateInput{
			Name:  first + " " + last,
			Email: fmt.Sprintf("%s.%s%d@example.com", strings.ToLower(first), strings.ToLower(last), i),
			Stage: candidates.StageApplied,
			JobID: job.ID,
		})
		if err != nil {
			log.Fatalf("seed candidate: %v", err)
		}

		// Advance past applied through Patch so the timeline records the
		// stage change.
		if stage != candidates.StageApplied {
			if _, err := app.CandidatesService.Patch(ctx, candidate.ID, candidates.UpdateInput{Stage: &stage}); err != nil {
				log.Fatalf("seed candidate stage: %v", err)
			}
		}
	}
}

func seedAssessments(ctx context.Context, app *bootstrap.App, createdJobs []jobs.Job) {
	maxLen := 500
	minYears := 0.0
	maxYears := 50.0

	for i := 0; i < 3 && i < len(createdJobs); i++ {
		job := createdJobs[i]
		input := assessments.Input{
			Title:       job.Title + " Screening",
			Description: "Initial screening questions for " + job.Title,
			Sections: []assessments.Section{
				{
					Title: "Background",
					Questions: []assessments.Question{
						{
							ID:       "q-experience",
							Type:     assessments.TypeNumeric,
							Question: "How many years of professional experience do you have?",
							Required: true,
							Validation: &assessments.Validation{
								Min: &minYears,
								Max: &maxYears,
							},
						},
						{
							ID:       "q-remote",
							Type:     assessments.TypeSingleChoice,
							Question: "Are you open to remote work?",
							Required: true,
							Options:  []string{"Yes", "No"},
						},
						{
							ID:       "q-remote-setup",
							Type:     assessments.TypeShortText,
							Question: "Describe your home office setup.",
							ConditionalLogic: &assessments.ConditionalLogic{
								DependsOnQuestionID: "q-remote",
								ShowWhen:            assessments.ShowWhenValue("Yes"),
							},
						},
					},
				},
				{
					Title: "Skills",
					Questions: []assessments.Question{
						{
							ID:       "q-stack",
							Type:     assessments.TypeMultiChoice,
							Question: "Which technologies have you used in production?",
							Required: true,
							Options:  []string{"Go", "TypeScript", "Postgres", "Kubernetes", "React"},
						},
						{
							ID:         "q-project",
							Type:       assessments.TypeLongText,
							Question:   "Tell us about a project you are proud of.",
							Required:   true,
							Validation: &assessments.Validation{MaxLength: &maxLen},
						},
					},
				},
			},
		}

		if _, err := app.AssessmentService.UpsertByJob(ctx, job.ID, input); err != nil {
			log.Fatalf("seed assessment for %q: %v", job.Title, err)
		}
	}
}
