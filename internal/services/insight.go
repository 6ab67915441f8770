package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/vivekmishra22/DevVoid-Task-Manager-Project/internal/models"
	"github.com/vivekmishra22/DevVoid-Task-Manager-Project/internal/repository"
)

// Canned responses for projects without tasks. Both entry points return
// these before any rule evaluation.
const (
	SummaryNoTasksMessage = "This project doesn't have any tasks yet. Add some tasks to get a detailed AI analysis!"
	AnswerNoTasksMessage  = "This project doesn't have any tasks yet. Add some tasks first, then I can provide detailed insights and answers!"
)

// InsightService produces summaries and answers about a project's task list.
// The generators are deterministic keyword/template rules; when an AIService
// is configured its output is preferred and the rules serve as fallback.
type InsightService struct {
	projectRepo repository.ProjectRepository
	taskRepo    repository.TaskRepository
	ai          *AIService
}

// NewInsightService creates a new InsightService. ai may be nil, in which
// case only the rule-based generators run.
func NewInsightService(projectRepo repository.ProjectRepository, taskRepo repository.TaskRepository, ai *AIService) *InsightService {
	return &InsightService{
		projectRepo: projectRepo,
		taskRepo:    taskRepo,
		ai:          ai,
	}
}

// Summarize produces a status report for a project's task list.
func (s *InsightService) Summarize(ctx context.Context, projectID uint64) (string, error) {
	project, tasks, err := s.load(projectID)
	if err != nil {
		return "", err
	}

	if len(tasks) == 0 {
		return SummaryNoTasksMessage, nil
	}

	if s.ai != nil {
		summary, err := s.ai.SummarizeProject(ctx, project, tasks)
		if err == nil {
			return summary, nil
		}
		logrus.WithError(err).Warn("AI summary failed, falling back to rule-based generator")
	}

	return GenerateSummary(project, tasks), nil
}

// Ask answers a free-text question about a project's task list. The caller
// is responsible for rejecting empty questions.
func (s *InsightService) Ask(ctx context.Context, projectID uint64, question string) (string, error) {
	project, tasks, err := s.load(projectID)
	if err != nil {
		return "", err
	}

	if len(tasks) == 0 {
		return AnswerNoTasksMessage, nil
	}

	if s.ai != nil {
		answer, err := s.ai.AnswerQuestion(ctx, project, tasks, question)
		if err == nil {
			return answer, nil
		}
		logrus.WithError(err).Warn("AI answer failed, falling back to rule-based generator")
	}

	return GenerateAnswer(project, tasks, question), nil
}

func (s *InsightService) load(projectID uint64) (*models.Project, []models.Task, error) {
	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrProjectNotFound
		}
		return nil, nil, fmt.Errorf("failed to find project: %w", err)
	}

	tasks, err := s.taskRepo.ListByProject(projectID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	return project, tasks, nil
}

// GenerateSummary builds a deterministic status report from a project and
// its task list. Pure function; tasks must be non-empty (callers handle the
// empty case with SummaryNoTasksMessage).
func GenerateSummary(project *models.Project, tasks []models.Task) string {
	if len(tasks) == 0 {
		return SummaryNoTasksMessage
	}

	todo := Partition(tasks, models.TaskStatusTodo)
	progress := Partition(tasks, models.TaskStatusInProgress)
	done := Partition(tasks, models.TaskStatusDone)

	focus := "No tasks in progress. Consider starting some tasks!"
	if len(progress) > 0 {
		focus = "Working on: " + joinTitles(progress)
	}

	completions := "No tasks completed yet."
	if len(done) > 0 {
		completions = "Completed: " + joinTitles(done)
	}

	return fmt.Sprintf(`**Project: %s**

📊 **Project Status Report:**
• Total Tasks: %d
• To Do: %d tasks
• In Progress: %d tasks
• Completed: %d tasks

🎯 **Current Focus:**
%s

✅ **Recent Completions:**
%s

💡 **Recommendation:**
%s

---
*AI Project Analysis Complete*`,
		project.Name,
		len(tasks),
		len(todo), len(progress), len(done),
		focus,
		completions,
		recommendation(len(todo), len(progress), len(done)),
	)
}

// recommendationRule pairs a condition over the three column counts with the
// advice to give when it holds. Rules are evaluated in order, first match
// wins.
type recommendationRule struct {
	match func(todo, progress, done int) bool
	text  string
}

var recommendationRules = []recommendationRule{
	{
		match: func(todo, progress, done int) bool { return progress == 0 && todo > 0 },
		text:  "Start working on your todo tasks to build momentum. Consider beginning with the highest priority item.",
	},
	{
		match: func(todo, progress, done int) bool { return done == 0 && progress > 0 },
		text:  "Focus on completing your in-progress tasks to show tangible progress.",
	},
	{
		match: func(todo, progress, done int) bool { return done > 0 && progress > 0 },
		text:  "Great balanced progress! Continue working while celebrating your completions.",
	},
	{
		match: func(todo, progress, done int) bool { return todo == 0 && progress == 0 && done > 0 },
		text:  "Excellent! All tasks completed. Consider adding new objectives or reviewing the project.",
	},
}

const defaultRecommendation = "Maintain consistent progress by balancing new starts with completions."

func recommendation(todo, progress, done int) string {
	for _, rule := range recommendationRules {
		if rule.match(todo, progress, done) {
			return rule.text
		}
	}
	return defaultRecommendation
}

// answerRule pairs a keyword group with its response builder. The question
// matches a rule when it contains any keyword of the group; rules are tested
// in order and the first match wins.
type answerRule struct {
	keywords []string
	respond  func(project *models.Project, tasks []models.Task) string
}

var answerRules = []answerRule{
	{
		keywords: []string{"progress", "working on"},
		respond: func(project *models.Project, tasks []models.Task) string {
			progress := Partition(tasks, models.TaskStatusInProgress)
			if len(progress) == 0 {
				return "There are no tasks currently in progress. All tasks are either completed or waiting to be started."
			}
			return fmt.Sprintf("**Tasks Currently in Progress (%d):**\n\n%s", len(progress), numberedTaskList(progress))
		},
	},
	{
		keywords: []string{"todo", "pending"},
		respond: func(project *models.Project, tasks []models.Task) string {
			todo := Partition(tasks, models.TaskStatusTodo)
			if len(todo) == 0 {
				return "Excellent! There are no pending tasks. All tasks have been started or completed."
			}
			return fmt.Sprintf("**Pending Tasks (%d):**\n\n%s", len(todo), numberedTaskList(todo))
		},
	},
	{
		keywords: []string{"done", "complete"},
		respond: func(project *models.Project, tasks []models.Task) string {
			done := Partition(tasks, models.TaskStatusDone)
			if len(done) == 0 {
				return "No tasks have been completed yet. Focus on moving tasks from 'In Progress' to 'Done'."
			}
			return fmt.Sprintf("**Completed Tasks (%d):**\n\n%s", len(done), numberedTaskList(done))
		},
	},
	{
		keywords: []string{"how many", "count"},
		respond: func(project *models.Project, tasks []models.Task) string {
			todo := Partition(tasks, models.TaskStatusTodo)
			progress := Partition(tasks, models.TaskStatusInProgress)
			done := Partition(tasks, models.TaskStatusDone)
			return fmt.Sprintf("**Task Breakdown:**\n\n• 📝 To Do: %d tasks\n• 🔄 In Progress: %d tasks\n• ✅ Completed: %d tasks\n\n**Total: %d tasks**",
				len(todo), len(progress), len(done), len(tasks))
		},
	},
	{
		keywords: []string{"priority", "next"},
		respond: func(project *models.Project, tasks []models.Task) string {
			todo := Partition(tasks, models.TaskStatusTodo)
			if len(todo) == 0 {
				return "All tasks have been started! Focus on completing the in-progress items."
			}
			return fmt.Sprintf("Based on your task list, I recommend starting with: **\"%s\"**\n\nConsider these factors when prioritizing:\n• Urgency and deadlines\n• Dependencies between tasks\n• Estimated effort required\n• Business impact",
				todo[0].Title)
		},
	},
}

// GenerateAnswer answers a free-text question with keyword matching over a
// fixed, ordered rule list. Pure function; tasks must be non-empty (callers
// handle the empty case with AnswerNoTasksMessage).
func GenerateAnswer(project *models.Project, tasks []models.Task, question string) string {
	if len(tasks) == 0 {
		return AnswerNoTasksMessage
	}

	lower := strings.ToLower(question)

	for _, rule := range answerRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lower, keyword) {
				return rule.respond(project, tasks)
			}
		}
	}

	return fmt.Sprintf("I've analyzed your project **\"%s\"** which has %d total tasks.\n\nI can help you with:\n• Task status and progress updates\n• Priority recommendations\n• Workload distribution analysis\n• Project completion insights\n\nTry asking about specific tasks or progress!",
		project.Name, len(tasks))
}

func joinTitles(tasks []models.Task) string {
	titles := make([]string, len(tasks))
	for i, t := range tasks {
		titles[i] = t.Title
	}
	return strings.Join(titles, ", ")
}

func numberedTaskList(tasks []models.Task) string {
	items := make([]string, len(tasks))
	for i, t := range tasks {
		item := fmt.Sprintf("%d. **%s**", i+1, t.Title)
		if t.Description != "" {
			item += fmt.Sprintf("\n   - %s", t.Description)
		}
		items[i] = item
	}
	return strings.Join(items, "\n\n")
}
