package service

import (
	"testing"

	"mindcare-backend/internal/apperror"
	"mindcare-backend/internal/model"
)

// dass21Groups is the standard 21-item subscale order, index 0 = item 1.
var dass21Groups = []string{
	model.GroupStress, model.GroupAnxiety, model.GroupDepression,
	model.GroupAnxiety, model.GroupDepression, model.GroupStress,
	model.GroupAnxiety, model.GroupStress, model.GroupAnxiety,
	model.GroupDepression, model.GroupStress, model.GroupStress,
	model.GroupDepression, model.GroupStress, model.GroupAnxiety,
	model.GroupDepression, model.GroupDepression, model.GroupStress,
	model.GroupAnxiety, model.GroupAnxiety, model.GroupDepression,
}

func newDASS21Survey() *model.Survey {
	survey := &model.Survey{ID: 1, SurveyName: "DASS-21", SurveyType: model.SurveyTypeDASS21}
	for i, group := range dass21Groups {
		qID := uint(i + 1)
		question := model.SurveyQuestion{ID: qID, SurveyID: 1, QuestionGroup: group}
		for score := 0; score <= 3; score++ {
			question.Options = append(question.Options, model.SurveyOption{
				ID:         qID*10 + uint(score),
				QuestionID: qID,
				Score:      score,
			})
		}
		survey.Questions = append(survey.Questions, question)
	}
	return survey
}

func newCFQSurvey(questionCount int) *model.Survey {
	survey := &model.Survey{ID: 2, SurveyName: "CFQ", SurveyType: model.SurveyTypeCFQ}
	for i := 0; i < questionCount; i++ {
		qID := uint(100 + i)
		question := model.SurveyQuestion{ID: qID, SurveyID: 2}
		for score := 0; score <= 4; score++ {
			question.Options = append(question.Options, model.SurveyOption{
				ID:         qID*10 + uint(score),
				QuestionID: qID,
				Score:      score,
			})
		}
		survey.Questions = append(survey.Questions, question)
	}
	return survey
}

// answersWithGroupScores picks one option per question so the raw
// (pre-doubling) sum per group matches the given score lists, consumed
// in question order.
func answersWithGroupScores(survey *model.Survey, scores map[string][]int) []model.QuestionAnswer {
	taken := make(map[string]int)
	answers := make([]model.QuestionAnswer, 0, len(survey.Questions))
	for _, q := range survey.Questions {
		score := 0
		if list, ok := scores[q.QuestionGroup]; ok && taken[q.QuestionGroup] < len(list) {
			score = list[taken[q.QuestionGroup]]
			taken[q.QuestionGroup]++
		}
		answers = append(answers, model.QuestionAnswer{
			QuestionID: q.ID,
			OptionID:   q.ID*10 + uint(score),
		})
	}
	return answers
}

func TestScoreSubmissionDASS21DoublesGroupSums(t *testing.T) {
	survey := newDASS21Survey()
	answers := answersWithGroupScores(survey, map[string][]int{
		model.GroupDepression: {3, 3, 2, 1, 1, 0, 0}, // raw 10
		model.GroupAnxiety:    {2, 1, 1, 1, 0, 0, 0}, // raw 5
		model.GroupStress:     {3, 2, 2, 1, 0, 0, 0}, // raw 8
	})

	outcome, err := ScoreSubmission(survey, answers, true)
	if err != nil {
		t.Fatalf("ScoreSubmission failed: %v", err)
	}
	if outcome.Depression != 20 {
		t.Errorf("depression = %d, want 20", outcome.Depression)
	}
	if outcome.Anxiety != 10 {
		t.Errorf("anxiety = %d, want 10", outcome.Anxiety)
	}
	if outcome.Stress != 16 {
		t.Errorf("stress = %d, want 16", outcome.Stress)
	}
	if outcome.Total != 46 {
		t.Errorf("total = %d, want 46 (sum of subscales)", outcome.Total)
	}
}

func TestScoreSubmissionDASS21TotalPolicy(t *testing.T) {
	survey := newDASS21Survey()
	answers := answersWithGroupScores(survey, map[string][]int{
		model.GroupDepression: {3, 3, 2, 1, 1, 0, 0},
		model.GroupAnxiety:    {2, 1, 1, 1, 0, 0, 0},
		model.GroupStress:     {3, 2, 2, 1, 0, 0, 0},
	})

	outcome, err := ScoreSubmission(survey, answers, false)
	if err != nil {
		t.Fatalf("ScoreSubmission failed: %v", err)
	}
	if outcome.Depression != 20 || outcome.Anxiety != 10 || outcome.Stress != 16 {
		t.Errorf("subscales = %d/%d/%d, want 20/10/16 regardless of the total policy",
			outcome.Depression, outcome.Anxiety, outcome.Stress)
	}
	if outcome.Total != 0 {
		t.Errorf("total = %d, want 0 when the sum policy is off", outcome.Total)
	}
}

func TestScoreSubmissionDASS21AllZeros(t *testing.T) {
	survey := newDASS21Survey()
	answers := answersWithGroupScores(survey, nil)

	outcome, err := ScoreSubmission(survey, answers, true)
	if err != nil {
		t.Fatalf("ScoreSubmission failed: %v", err)
	}
	if outcome != (model.ScoreOutcome{}) {
		t.Errorf("all-zero answers produced %+v, want zero outcome", outcome)
	}
}

func TestScoreSubmissionCFQSumsAllAnswers(t *testing.T) {
	survey := newCFQSurvey(5)
	answers := []model.QuestionAnswer{
		{QuestionID: 100, OptionID: 1004}, // 4
		{QuestionID: 101, OptionID: 1013}, // 3
		{QuestionID: 102, OptionID: 1020}, // 0
		{QuestionID: 103, OptionID: 1032}, // 2
		{QuestionID: 104, OptionID: 1041}, // 1
	}

	outcome, err := ScoreSubmission(survey, answers, true)
	if err != nil {
		t.Fatalf("ScoreSubmission failed: %v", err)
	}
	if outcome.Total != 10 {
		t.Errorf("total = %d, want 10", outcome.Total)
	}
	if outcome.Depression != 0 || outcome.Anxiety != 0 || outcome.Stress != 0 {
		t.Errorf("CFQ outcome has subscale scores: %+v", outcome)
	}
}

func TestScoreSubmissionRejectsMalformedAnswers(t *testing.T) {
	cases := []struct {
		name   string
		mutate func([]model.QuestionAnswer) []model.QuestionAnswer
	}{
		{
			name: "question not in survey",
			mutate: func(answers []model.QuestionAnswer) []model.QuestionAnswer {
				answers[0].QuestionID = 999
				answers[0].OptionID = 9990
				return answers
			},
		},
		{
			name: "option not on question",
			mutate: func(answers []model.QuestionAnswer) []model.QuestionAnswer {
				answers[0].OptionID = answers[1].OptionID
				return answers
			},
		},
		{
			name: "duplicate answer",
			mutate: func(answers []model.QuestionAnswer) []model.QuestionAnswer {
				return append(answers, answers[0])
			},
		},
		{
			name: "missing answer",
			mutate: func(answers []model.QuestionAnswer) []model.QuestionAnswer {
				return answers[:len(answers)-1]
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			survey := newDASS21Survey()
			answers := tc.mutate(answersWithGroupScores(survey, nil))

			_, err := ScoreSubmission(survey, answers, true)
			if err == nil {
				t.Fatal("expected an error, got none")
			}
			if !apperror.IsMalformedSubmission(err) {
				t.Errorf("error = %v, want malformed submission", err)
			}
		})
	}
}

func TestScoreSubmissionRejectsUnknownSurveyType(t *testing.T) {
	survey := &model.Survey{ID: 3, SurveyType: "PHQ9"}
	_, err := ScoreSubmission(survey, nil, true)
	if !apperror.IsMalformedSubmission(err) {
		t.Errorf("error = %v, want malformed submission", err)
	}
}
