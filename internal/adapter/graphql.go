// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-notes/internal/config"
	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/internal/utils"
	"github.com/MKhiriev/go-notes/models"
)

type graphQLNotesAPI struct {
	client   *utils.HTTPClient
	endpoint string
	apiKey   string
	session  SessionProvider

	logger *logger.Logger
}

// NewGraphQLNotesAPI constructs the GraphQL implementation of [NotesAPI].
// adapterCfg.APIAddress is the full endpoint URL; requests are bounded by
// adapterCfg.RequestTimeout.
//
// Returns an error if adapterCfg.APIAddress is empty or cannot be parsed as a
// valid URL.
func NewGraphQLNotesAPI(adapterCfg config.Adapter, session SessionProvider, logger *logger.Logger) (NotesAPI, error) {
	endpoint, err := normalizeBaseURL(adapterCfg.APIAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter api address: %w", err)
	}

	return &graphQLNotesAPI{
		client:   utils.NewHTTPClient(endpoint, adapterCfg.RequestTimeout),
		endpoint: endpoint,
		apiKey:   adapterCfg.APIKey,
		session:  session,
		logger:   logger,
	}, nil
}

// ListNotes implements [NotesAPI].
func (g *graphQLNotesAPI) ListNotes(ctx context.Context) ([]*models.Note, error) {
	var data models.ListNotesData
	if err := do(ctx, g, "ListNotes", listNotesQuery, nil, &data); err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}

	if data.ListNotes == nil || data.ListNotes.Items == nil {
		return nil, fmt.Errorf("list notes: %w", ErrEmptyData)
	}

	return data.ListNotes.Items, nil
}

// CreateNote implements [NotesAPI].
func (g *graphQLNotesAPI) CreateNote(ctx context.Context, input models.CreateNoteInput) (*models.Note, error) {
	var data models.CreateNoteData
	if err := do(ctx, g, "CreateNote", createNoteMutation, map[string]any{"input": input}, &data); err != nil {
		return nil, fmt.Errorf("create note: %w", err)
	}

	return data.CreateNote, nil
}

// DeleteNote implements [NotesAPI].
func (g *graphQLNotesAPI) DeleteNote(ctx context.Context, input models.DeleteNoteInput) (*models.Note, error) {
	var data models.DeleteNoteData
	if err := do(ctx, g, "DeleteNote", deleteNoteMutation, map[string]any{"input": input}, &data); err != nil {
		return nil, fmt.Errorf("delete note: %w", err)
	}

	return data.DeleteNote, nil
}

// do POSTs one GraphQL operation and decodes its "data" object into out.
// A response without "data" leaves out untouched.
func do[T any](ctx context.Context, g *graphQLNotesAPI, operation, query string, variables map[string]any, out *T) error {
	req, err := authedRequest(ctx, g.client.Client, g.session, g.apiKey)
	if err != nil {
		return err
	}

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(models.GraphQLRequest{
			Query:         query,
			OperationName: operation,
			Variables:     variables,
		}).
		Post(g.endpoint)
	if err != nil {
		return fmt.Errorf("graphql request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	var envelope models.GraphQLResponse[T]
	if err = json.Unmarshal(resp.Body(), &envelope); err != nil {
		return fmt.Errorf("decode graphql response: %w", err)
	}

	g.logger.Debug().
		Str("operation", operation).
		Int("status", resp.StatusCode()).
		Dur("duration", resp.Time()).
		Int("errors", len(envelope.Errors)).
		Msg("graphql operation finished")

	if err = mapGraphQLErrors(envelope.Errors); err != nil {
		return err
	}
	if envelope.Data != nil {
		*out = *envelope.Data
	}

	return nil
}
