package domain

import (
	"time"

	"github.com/cofund-lab/backend/internal/entity"
	"github.com/cofund-lab/backend/internal/model"
)

func convertProject(project *entity.Project) model.Project {
	return model.Project{
		ID:              project.ID,
		OwnerID:         project.CreatedBy,
		Title:           project.Title,
		Summary:         string(project.Summary),
		Thumbnail:       project.Thumbnail,
		TargetAmount:    project.TargetAmount,
		CollectedAmount: project.CollectedAmount,
		Status:          string(project.Status),
		CreatedAt:       project.CreatedAt.Format(time.RFC3339),
	}
}

func convertRewardOption(option *entity.RewardOption) model.RewardOption {
	return model.RewardOption{
		ID:          option.ID,
		ProjectID:   option.ProjectID,
		Price:       option.Price,
		Description: option.Description,
	}
}

func convertFunding(funding *entity.Funding) model.Funding {
	var optionID *int64
	if funding.OptionID.Valid {
		id := funding.OptionID.Int64
		optionID = &id
	}

	return model.Funding{
		ID:        funding.ID,
		ProjectID: funding.ProjectID,
		OptionID:  optionID,
		Price:     funding.Price,
		CreatedAt: funding.CreatedAt.Format(time.RFC3339),
	}
}

func convertAsk(ask *entity.Ask) model.Ask {
	return model.Ask{
		ID:        ask.ID,
		AuthorID:  ask.AuthorID,
		Content:   ask.Content,
		CreatedAt: ask.CreatedAt.Format(time.RFC3339),
	}
}

func convertAnswer(answer *entity.Answer) model.Answer {
	return model.Answer{
		ID:        answer.ID,
		Content:   answer.Content,
		CreatedAt: answer.CreatedAt.Format(time.RFC3339),
	}
}
