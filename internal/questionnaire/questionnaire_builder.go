package questionnaire

import (
	"context"

	"github.com/KATBlackCoder/rapportflow/internal/domain"
)

// ResolveConditionals maps each position's conditional index onto the id
// inserted at that index. Only a strictly earlier position resolves. Self,
// forward and out of range indexes give nil.
func ResolveConditionals(indexes []*int, ids []uint) []*uint {
	links := make([]*uint, len(indexes))
	for pos, idx := range indexes {
		if idx == nil || *idx < 0 || *idx >= pos || *idx >= len(ids) {
			continue
		}
		id := ids[*idx]
		links[pos] = &id
	}
	return links
}

// buildQuestions inserts the batch unlinked, then applies the conditional
// links once every id is known.
func buildQuestions(ctx context.Context, repo Repository, questionnaireID uint, inputs []QuestionInput) error {
	ids := make([]uint, len(inputs))
	indexes := make([]*int, len(inputs))

	for i, in := range inputs {
		q := &Question{
			QuestionnaireID:  questionnaireID,
			Type:             domain.QuestionType(in.Type),
			Question:         in.Question,
			Required:         in.Required,
			Options:          in.Options,
			ConditionalValue: in.ConditionalValue,
		}
		if in.Order != nil {
			q.Order = *in.Order
		}
		if err := repo.CreateQuestion(ctx, q); err != nil {
			return err
		}
		ids[i] = q.ID
		indexes[i] = in.ConditionalQuestionIndex
	}

	for pos, target := range ResolveConditionals(indexes, ids) {
		if target == nil {
			continue
		}
		if err := repo.LinkConditional(ctx, ids[pos], *target); err != nil {
			return err
		}
	}
	return nil
}
