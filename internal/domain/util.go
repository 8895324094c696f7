package domain

import (
	"strings"

	"github.com/cofund-lab/backend/pkg/errorx"
)

func checkContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return errorx.New(errorx.BadRequest, "Content must not be blank")
	}

	return nil
}

func checkRewardOption(price int64, description string) error {
	if price <= 0 {
		return errorx.New(errorx.BadRequest, "Price must be a positive integer")
	}

	if strings.TrimSpace(description) == "" {
		return errorx.New(errorx.BadRequest, "Description must not be blank")
	}

	return nil
}
