package service

import (
	"fmt"

	"mindcare-backend/internal/apperror"
	"mindcare-backend/internal/model"
)

// ScoreSubmission computes the score outcome for a set of answers against
// a survey definition. Pure: no persistence, no side effects.
//
// DASS21 sums the selected option scores per question group and doubles
// each group sum (the published rule for 7-item subscales on a 0-3
// scale). CFQ sums everything into a single total.
//
// dass21TotalIsSum settles what the DASS-21 total column holds. The
// instrument itself only defines the three subscales; filling total with
// their sum gives downstream aggregation a total order to work with. The
// policy comes from the SCORING config section so it stays auditable.
func ScoreSubmission(survey *model.Survey, answers []model.QuestionAnswer, dass21TotalIsSum bool) (model.ScoreOutcome, error) {
	outcome := model.ScoreOutcome{}

	groupScores, err := sumByGroup(survey, answers)
	if err != nil {
		return outcome, err
	}

	switch survey.SurveyType {
	case model.SurveyTypeDASS21:
		outcome.Depression = groupScores[model.GroupDepression] * 2
		outcome.Anxiety = groupScores[model.GroupAnxiety] * 2
		outcome.Stress = groupScores[model.GroupStress] * 2
		if dass21TotalIsSum {
			outcome.Total = outcome.Depression + outcome.Anxiety + outcome.Stress
		}
	case model.SurveyTypeCFQ:
		for _, sum := range groupScores {
			outcome.Total += sum
		}
	default:
		return outcome, apperror.MalformedSubmission("survey", survey.ID,
			fmt.Sprintf("unknown survey type %q", survey.SurveyType))
	}

	return outcome, nil
}

// sumByGroup validates every answer against the survey definition and
// accumulates option scores by question group. A group with no questions
// in the survey simply never appears in the map, which downstream reads
// as zero.
func sumByGroup(survey *model.Survey, answers []model.QuestionAnswer) (map[string]int, error) {
	questions := make(map[uint]*model.SurveyQuestion, len(survey.Questions))
	for i := range survey.Questions {
		questions[survey.Questions[i].ID] = &survey.Questions[i]
	}

	answered := make(map[uint]bool, len(answers))
	groupScores := make(map[string]int)

	for _, answer := range answers {
		question, ok := questions[answer.QuestionID]
		if !ok {
			return nil, apperror.MalformedSubmission("question", answer.QuestionID,
				"question does not belong to this survey")
		}
		if answered[answer.QuestionID] {
			return nil, apperror.MalformedSubmission("question", answer.QuestionID,
				"question answered more than once")
		}
		answered[answer.QuestionID] = true

		option, ok := findOption(question, answer.OptionID)
		if !ok {
			return nil, apperror.MalformedSubmission("option", answer.OptionID,
				"option does not belong to this question")
		}

		groupScores[question.QuestionGroup] += option.Score
	}

	// One answer per question in the survey. Partial submissions are a
	// caller concern but cannot produce a valid instrument score, so they
	// are rejected here with the first missing question named.
	if len(answered) != len(survey.Questions) {
		for _, q := range survey.Questions {
			if !answered[q.ID] {
				return nil, apperror.MalformedSubmission("question", q.ID, "question not answered")
			}
		}
	}

	return groupScores, nil
}

func findOption(question *model.SurveyQuestion, optionID uint) (*model.SurveyOption, bool) {
	for i := range question.Options {
		if question.Options[i].ID == optionID {
			return &question.Options[i], true
		}
	}
	return nil, false
}
