package duel

import (
	"context"
	"sort"
	"strings"
	"time"

	"gitlab.com/codeduel-2025.net/internal/config"
	"gitlab.com/codeduel-2025.net/internal/core/ports/primary"
	"gitlab.com/codeduel-2025.net/internal/core/ports/secondary"
	"gitlab.com/codeduel-2025.net/internal/domain"
	"gitlab.com/codeduel-2025.net/internal/static/errs"
	"gitlab.com/codeduel-2025.net/internal/utils"
)

var _ IDuelService = (*DuelService)(nil)

// DuelService implements the DuelService interface. Run and Submit are
// called from dispatcher tasks; the judge round-trips happen on side
// goroutines that hand their outcome back to the dispatcher as a
// continuation, so duel state is only ever touched serially.
type DuelService struct {
	directory secondary.SessionDirectory
	duels     secondary.DuelStore
	problems  secondary.ProblemRepository
	gate      secondary.SubmissionGate
	executor  secondary.CodeExecutor
	notifier  secondary.Notifier
	tasks     primary.TaskQueue
	logger    primary.Logger
	cfg       *config.DuelConfig
}

// NewDuelService creates a new duel service
func NewDuelService(
	directory secondary.SessionDirectory,
	duels secondary.DuelStore,
	problems secondary.ProblemRepository,
	gate secondary.SubmissionGate,
	executor secondary.CodeExecutor,
	notifier secondary.Notifier,
	tasks primary.TaskQueue,
	logger primary.Logger,
	cfg *config.DuelConfig,
) *DuelService {
	return &DuelService{
		directory: directory,
		duels:     duels,
		problems:  problems,
		gate:      gate,
		executor:  executor,
		notifier:  notifier,
		tasks:     tasks,
		logger:    logger,
		cfg:       cfg,
	}
}

// SetNotifier sets the notifier after construction; the transport that
// implements it is built after the services.
func (s *DuelService) SetNotifier(notifier secondary.Notifier) {
	s.notifier = notifier
}

// Run executes code against the visible test cases only
func (s *DuelService) Run(ctx context.Context, sessionID, code, language string) error {
	roomID, problemID, err := s.activeDuel(sessionID)
	if err != nil {
		return err
	}
	if err := s.validate(code, language); err != nil {
		return err
	}

	s.logger.Debug("Running code", "roomId", roomID, "sessionId", sessionID, "language", language)

	languageID := domain.LanguageIDs[language]
	go func() {
		problem, err := s.problems.GetByID(context.Background(), problemID)
		if err != nil {
			s.logger.Error("Failed to load problem for run", "problemId", problemID, "error", err)
			s.tasks.Enqueue(func() {
				s.notifier.Notify(sessionID, domain.EventSubmissionError, domain.ErrorData{Message: "Failed to run code"})
			})
			return
		}

		report := s.runCases(context.Background(), code, languageID, problem.VisibleTestCases())
		s.tasks.Enqueue(func() {
			s.notifier.Notify(sessionID, domain.EventRunResults, report)
		})
	}()

	return nil
}

// Submit executes code against the full test-case set and records the
// scored submission
func (s *DuelService) Submit(ctx context.Context, sessionID, code, language string) error {
	roomID, problemID, err := s.activeDuel(sessionID)
	if err != nil {
		return err
	}
	if err := s.validate(code, language); err != nil {
		return err
	}

	allowed, err := s.gate.Allow(ctx, sessionID)
	if err != nil {
		// a broken gate backend must not block the duel
		s.logger.Warn("Submission gate unavailable, admitting", "sessionId", sessionID, "error", err)
	} else if !allowed {
		return errs.RateLimited
	}

	sub := &domain.Submission{
		SessionID:  sessionID,
		Code:       code,
		Language:   language,
		SubmitTime: time.Now(),
	}
	if !s.duels.PutSubmission(roomID, sub) {
		return errs.NotInRoom
	}

	s.logger.Info("Submission received", "roomId", roomID, "sessionId", sessionID, "language", language)

	s.notifier.Notify(sessionID, domain.EventTestingCode, domain.TestingCodeData{Message: "Running your code..."})
	for _, other := range s.directory.SessionsInRoom(roomID) {
		if other != sessionID {
			s.notifier.Notify(other, domain.EventOpponentSubmitted, domain.TestingCodeData{Message: "Your opponent has submitted"})
		}
	}

	languageID := domain.LanguageIDs[language]
	go func() {
		problem, err := s.problems.GetByID(context.Background(), problemID)
		if err != nil {
			s.logger.Error("Failed to load problem for submission", "problemId", problemID, "error", err)
			empty := &domain.TestRunReport{Results: []domain.TestCaseResult{}}
			s.tasks.Enqueue(func() { s.finishSubmission(roomID, sessionID, empty, nil) })
			return
		}

		report := s.runCases(context.Background(), code, languageID, problem.TestCases)
		s.tasks.Enqueue(func() { s.finishSubmission(roomID, sessionID, report, problem) })
	}()

	return nil
}

// finishSubmission lands a scored report back on dispatcher context. When
// the duel vanished in the meantime (a disconnect cascade deleted it) the
// report is discarded.
func (s *DuelService) finishSubmission(roomID, sessionID string, report *domain.TestRunReport, problem *domain.Problem) {
	if !s.duels.AttachResults(roomID, sessionID, report) {
		s.logger.Debug("Dropping results for finished duel", "roomId", roomID, "sessionId", sessionID)
		return
	}

	s.notifier.Notify(sessionID, domain.EventTestResults, report)

	if s.duels.TryReveal(roomID) {
		s.reveal(roomID, problem)
	}
}

// reveal discloses both solutions and the winner to every session still in
// the room. TryReveal guarantees this runs at most once per duel.
func (s *DuelService) reveal(roomID string, problem *domain.Problem) {
	subs, exists := s.duels.Submissions(roomID)
	if !exists {
		return
	}

	sort.Slice(subs, func(i, j int) bool {
		if subs[i].SubmitTime.Equal(subs[j].SubmitTime) {
			return subs[i].SessionID < subs[j].SessionID
		}
		return subs[i].SubmitTime.Before(subs[j].SubmitTime)
	})

	solutions := make([]domain.SolutionData, 0, len(subs))
	for _, sub := range subs {
		solutions = append(solutions, domain.SolutionData{
			SessionID:   sub.SessionID,
			Code:        sub.Code,
			Language:    sub.Language,
			TestResults: sub.Results,
			SubmitTime:  sub.SubmitTime.UnixMilli(),
		})
	}

	winner := determineWinner(subs)
	s.logger.Info("Revealing solutions", "roomId", roomID, "winner", winner)

	var public *domain.Problem
	if problem != nil {
		public = problem.Public()
	}
	data := domain.RevealSolutionsData{
		Solutions: solutions,
		Winner:    winner,
		Problem:   public,
	}
	for _, member := range s.directory.SessionsInRoom(roomID) {
		s.notifier.Notify(member, domain.EventRevealSolutions, data)
	}
}

// determineWinner picks the submission with the most passed cases from a
// submit-time-ordered slice. A scored submission beats one whose verdict is
// still pending, and ties go to the earlier submitter, so two pending
// verdicts resolve to whoever submitted first. Empty only when the slice is
// empty.
func determineWinner(subs []*domain.Submission) string {
	winner := ""
	bestPassed := -2
	for _, sub := range subs {
		passed := -1
		if sub.Results != nil {
			passed = sub.Results.Passed
		}
		if passed > bestPassed {
			winner = sub.SessionID
			bestPassed = passed
		}
	}
	return winner
}

// runCases executes code against each test case in order and scores the
// outcomes. Hidden case contents are masked so they never reach a client
// through the results payload.
func (s *DuelService) runCases(ctx context.Context, code string, languageID int, cases []domain.TestCase) *domain.TestRunReport {
	report := &domain.TestRunReport{
		Total:   len(cases),
		Results: make([]domain.TestCaseResult, 0, len(cases)),
	}
	for _, tc := range cases {
		exec := s.executor.Execute(ctx, code, languageID, tc.Input)
		actual := normalizeOutput(exec.Stdout)
		passed := exec.Accepted() && actual == normalizeOutput(tc.ExpectedOutput)
		if passed {
			report.Passed++
		}

		result := domain.TestCaseResult{
			Input:    tc.Input,
			Expected: tc.ExpectedOutput,
			Actual:   actual,
			Passed:   passed,
			Error:    exec.ErrorText(),
			TimeMs:   exec.TimeMs,
			MemoryKb: exec.MemoryKb,
			Status:   exec.StatusDescription,
		}
		if tc.IsHidden {
			result.Input = ""
			result.Expected = ""
			result.Actual = ""
		}
		report.Results = append(report.Results, result)
	}
	return report
}

// normalizeOutput trims surrounding whitespace and folds CRLF line endings
// so verdicts do not depend on the judge container's newline convention
func normalizeOutput(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, "\r\n", "\n"))
}

// activeDuel resolves the caller's started duel, rejecting sessions that
// are not in one.
func (s *DuelService) activeDuel(sessionID string) (roomID, problemID string, err error) {
	roomID, bound := s.directory.RoomOf(sessionID)
	if !bound {
		return "", "", errs.NotInRoom
	}
	problemID, exists := s.duels.ProblemID(roomID)
	if !exists {
		return "", "", errs.NotInRoom
	}
	return roomID, problemID, nil
}

func (s *DuelService) validate(code, language string) error {
	if err := utils.ValidateCode(code, s.cfg.MaxCodeSize); err != nil {
		return err
	}
	return utils.ValidateLanguage(language)
}
