package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/cofund-lab/backend/internal/model"
	"github.com/cofund-lab/backend/pkg/api"
)

// EntryRef names one side of an ask/answer pair. The transport shares a
// resource family across both kinds; this tagged reference is dispatched in
// exactly one place per operation instead of branching on a raw string at
// every call site.
type EntryKind int

const (
	KindAsk EntryKind = iota
	KindAnswer
)

type EntryRef struct {
	Kind EntryKind
	ID   int64
}

// StoreCaller is the typed surface the storefront and the admin console use
// to reach the funding service.
type StoreCaller interface {
	SubmitFunding(ctx context.Context, req *model.CreateFundingRequest) (*model.Funding, error)

	ListRewardOptions(ctx context.Context, projectID string) ([]model.RewardOption, error)
	CreateRewardOption(ctx context.Context, projectID string, price int64, description string) (*model.RewardOption, error)
	UpdateRewardOption(ctx context.Context, optionID int64, price int64, description string) error
	DeleteRewardOption(ctx context.Context, optionID int64) error

	GetCommunity(ctx context.Context, projectID string) ([]model.CommunityEntry, error)
	CreateAsk(ctx context.Context, projectID string, content string) (*model.Ask, error)
	CreateAnswer(ctx context.Context, askID int64, content string) (*model.Answer, error)
	UpdateEntry(ctx context.Context, ref EntryRef, content string) error
	DeleteEntry(ctx context.Context, ref EntryRef) error

	GetProject(ctx context.Context, projectID string) (*model.Project, error)
	GetProjects(ctx context.Context) ([]model.Project, error)
	SetProjectStatus(ctx context.Context, projectID string, status string) error
}

type storeCaller struct {
	generator   api.Generator
	accessToken string
}

func NewStoreCaller(generator api.Generator, accessToken string) *storeCaller {
	return &storeCaller{generator: generator, accessToken: accessToken}
}

func (c *storeCaller) authorize(client api.Client) api.Client {
	if c.accessToken == "" {
		return client
	}

	return client.Header("Authorization", "Bearer "+c.accessToken)
}

// envelope mirrors the service's response shape. A failure keeps the data
// field null and carries a human-readable message.
type envelope[T any] struct {
	Message string `json:"message"`
	Data    *T     `json:"data"`
}

func decodeData[T any](resp *api.Response) (*T, error) {
	var env envelope[T]
	if err := json.Unmarshal(resp.RawBody, &env); err != nil {
		return nil, fmt.Errorf("cannot decode the response: %w", err)
	}

	if resp.Code != http.StatusOK {
		return nil, errors.New(env.Message)
	}

	if env.Data == nil {
		return nil, errors.New("response data is missing")
	}

	return env.Data, nil
}

func checkStatus(resp *api.Response) error {
	if resp.Code == http.StatusOK {
		return nil
	}

	var env envelope[json.RawMessage]
	if err := json.Unmarshal(resp.RawBody, &env); err != nil {
		return fmt.Errorf("request failed with status %d", resp.Code)
	}

	return errors.New(env.Message)
}

func (c *storeCaller) SubmitFunding(
	ctx context.Context, req *model.CreateFundingRequest,
) (*model.Funding, error) {
	resp, err := c.authorize(c.generator.New("/funding")).
		Body(api.JSONBody(req)).
		POST(ctx)
	if err != nil {
		return nil, err
	}

	data, err := decodeData[model.CreateFundingResponse](resp)
	if err != nil {
		return nil, err
	}

	return &data.Funding, nil
}

// ListRewardOptions is a public read and sends no credentials.
func (c *storeCaller) ListRewardOptions(
	ctx context.Context, projectID string,
) ([]model.RewardOption, error) {
	resp, err := c.generator.New("/option/%s", projectID).GET(ctx)
	if err != nil {
		return nil, err
	}

	data, err := decodeData[model.GetRewardOptionsResponse](resp)
	if err != nil {
		return nil, err
	}

	return data.Options, nil
}

func (c *storeCaller) CreateRewardOption(
	ctx context.Context, projectID string, price int64, description string,
) (*model.RewardOption, error) {
	resp, err := c.authorize(c.generator.New("/option/%s", projectID)).
		Body(api.JSONBody(model.CreateRewardOptionRequest{Price: price, Description: description})).
		POST(ctx)
	if err != nil {
		return nil, err
	}

	data, err := decodeData[model.CreateRewardOptionResponse](resp)
	if err != nil {
		return nil, err
	}

	return &data.Option, nil
}

func (c *storeCaller) UpdateRewardOption(
	ctx context.Context, optionID int64, price int64, description string,
) error {
	resp, err := c.authorize(c.generator.New("/option/%d", optionID)).
		Body(api.JSONBody(model.UpdateRewardOptionRequest{Price: price, Description: description})).
		PUT(ctx)
	if err != nil {
		return err
	}

	return checkStatus(resp)
}

func (c *storeCaller) DeleteRewardOption(ctx context.Context, optionID int64) error {
	resp, err := c.authorize(c.generator.New("/option/%d", optionID)).DELETE(ctx)
	if err != nil {
		return err
	}

	return checkStatus(resp)
}

func (c *storeCaller) GetCommunity(
	ctx context.Context, projectID string,
) ([]model.CommunityEntry, error) {
	resp, err := c.generator.New("/project/%s/community", projectID).GET(ctx)
	if err != nil {
		return nil, err
	}

	data, err := decodeData[model.GetCommunityResponse](resp)
	if err != nil {
		return nil, err
	}

	return data.Entries, nil
}

func (c *storeCaller) CreateAsk(
	ctx context.Context, projectID string, content string,
) (*model.Ask, error) {
	resp, err := c.authorize(c.generator.New("/project/%s/community", projectID)).
		Body(api.JSONBody(model.CreateAskRequest{Content: content})).
		POST(ctx)
	if err != nil {
		return nil, err
	}

	data, err := decodeData[model.CreateAskResponse](resp)
	if err != nil {
		return nil, err
	}

	return &data.Ask, nil
}

func (c *storeCaller) CreateAnswer(
	ctx context.Context, askID int64, content string,
) (*model.Answer, error) {
	resp, err := c.authorize(c.generator.New("/project/%d/community/answer", askID)).
		Body(api.JSONBody(model.CreateAnswerRequest{Content: content})).
		POST(ctx)
	if err != nil {
		return nil, err
	}

	data, err := decodeData[model.CreateAnswerResponse](resp)
	if err != nil {
		return nil, err
	}

	return &data.Answer, nil
}

// entryPath is the single place the ask/answer discriminator is turned into a
// route.
func entryPath(ref EntryRef) (string, error) {
	switch ref.Kind {
	case KindAsk:
		return fmt.Sprintf("/project/community/%d", ref.ID), nil
	case KindAnswer:
		return fmt.Sprintf("/project/community/%d/answer", ref.ID), nil
	default:
		return "", fmt.Errorf("unknown entry kind %d", ref.Kind)
	}
}

func (c *storeCaller) UpdateEntry(ctx context.Context, ref EntryRef, content string) error {
	path, err := entryPath(ref)
	if err != nil {
		return err
	}

	resp, err := c.authorize(c.generator.New(path)).
		Body(api.JSONBody(map[string]string{"content": content})).
		POST(ctx)
	if err != nil {
		return err
	}

	return checkStatus(resp)
}

func (c *storeCaller) DeleteEntry(ctx context.Context, ref EntryRef) error {
	path, err := entryPath(ref)
	if err != nil {
		return err
	}

	resp, err := c.authorize(c.generator.New(path)).DELETE(ctx)
	if err != nil {
		return err
	}

	return checkStatus(resp)
}

func (c *storeCaller) GetProject(ctx context.Context, projectID string) (*model.Project, error) {
	resp, err := c.generator.New("/project/%s", projectID).GET(ctx)
	if err != nil {
		return nil, err
	}

	data, err := decodeData[model.GetProjectResponse](resp)
	if err != nil {
		return nil, err
	}

	return &data.Project, nil
}

func (c *storeCaller) GetProjects(ctx context.Context) ([]model.Project, error) {
	resp, err := c.authorize(c.generator.New("/project")).GET(ctx)
	if err != nil {
		return nil, err
	}

	data, err := decodeData[model.GetProjectsResponse](resp)
	if err != nil {
		return nil, err
	}

	return data.Projects, nil
}

func (c *storeCaller) SetProjectStatus(
	ctx context.Context, projectID string, status string,
) error {
	resp, err := c.authorize(c.generator.New("/admin/project/status/%s", projectID)).
		Query(api.Parameter{"status": status}).
		POST(ctx)
	if err != nil {
		return err
	}

	return checkStatus(resp)
}
