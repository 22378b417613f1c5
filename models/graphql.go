// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// GraphQLRequest is the JSON body POSTed to the GraphQL endpoint.
type GraphQLRequest struct {
	Query         string         `json:"query"`
	OperationName string         `json:"operationName,omitempty"`
	Variables     map[string]any `json:"variables,omitempty"`
}

// GraphQLError is a single entry of the "errors" array of a GraphQL response.
type GraphQLError struct {
	Message   string `json:"message"`
	ErrorType string `json:"errorType,omitempty"`
	Path      []any  `json:"path,omitempty"`
}

// GraphQLErrors is the "errors" array of a GraphQL response.
type GraphQLErrors []GraphQLError

// Error joins all messages so the array can be reported as a single error.
func (e GraphQLErrors) Error() string {
	messages := make([]string, 0, len(e))
	for _, gqlErr := range e {
		if gqlErr.ErrorType != "" {
			messages = append(messages, gqlErr.ErrorType+": "+gqlErr.Message)
			continue
		}
		messages = append(messages, gqlErr.Message)
	}

	return strings.Join(messages, "; ")
}

// GraphQLResponse is the envelope of every GraphQL response.
type GraphQLResponse[T any] struct {
	Data   *T            `json:"data"`
	Errors GraphQLErrors `json:"errors,omitempty"`
}

// ListNotesData is the "data" object of the listNotes query.
// Items may contain null entries; they are kept as nil pointers.
type ListNotesData struct {
	ListNotes *struct {
		Items     []*Note `json:"items"`
		NextToken *string `json:"nextToken"`
	} `json:"listNotes"`
}

// CreateNoteData is the "data" object of the createNote mutation.
type CreateNoteData struct {
	CreateNote *Note `json:"createNote"`
}

// DeleteNoteData is the "data" object of the deleteNote mutation.
type DeleteNoteData struct {
	DeleteNote *Note `json:"deleteNote"`
}
