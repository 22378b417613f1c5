// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

const noteFields = `
      id
      name
      description
      image
      createdAt
      updatedAt`

const listNotesQuery = `query ListNotes($filter: ModelNoteFilterInput, $limit: Int, $nextToken: String) {
  listNotes(filter: $filter, limit: $limit, nextToken: $nextToken) {
    items {` + noteFields + `
    }
    nextToken
  }
}`

const createNoteMutation = `mutation CreateNote($input: CreateNoteInput!, $condition: ModelNoteConditionInput) {
  createNote(input: $input, condition: $condition) {` + noteFields + `
  }
}`

const deleteNoteMutation = `mutation DeleteNote($input: DeleteNoteInput!, $condition: ModelNoteConditionInput) {
  deleteNote(input: $input, condition: $condition) {` + noteFields + `
  }
}`
