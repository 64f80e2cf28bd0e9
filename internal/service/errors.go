package service

import (
	"errors"
	"fmt"
)

// Error classes. Every sentinel below wraps exactly one of these so the
// transport can map it without knowing the individual cases.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
)

var (
	ErrInvalidStatus        = fmt.Errorf("%w: invalid applicant status", ErrInvalidInput)
	ErrMissingID            = fmt.Errorf("%w: missing user id", ErrInvalidInput)
	ErrMissingFields        = fmt.Errorf("%w: missing fields", ErrInvalidInput)
	ErrMissingFirstChoice   = fmt.Errorf("%w: first choice required", ErrInvalidInput)
	ErrInvalidDatetime      = fmt.Errorf("%w: invalid datetime", ErrInvalidInput)
	ErrDuplicateChoice      = fmt.Errorf("%w: duplicate choices", ErrInvalidInput)
	ErrMissingInterviewTime = fmt.Errorf("%w: missing interview time", ErrInvalidInput)
	ErrInvalidOrg           = fmt.Errorf("%w: invalid org", ErrInvalidInput)
	ErrMissingOrgID         = fmt.Errorf("%w: missing id", ErrInvalidInput)
	ErrInvalidDepth         = fmt.Errorf("%w: invalid depth", ErrInvalidInput)
	ErrInvalidFile          = fmt.Errorf("%w: invalid file", ErrInvalidInput)
	ErrFileTooLarge         = fmt.Errorf("%w: file too large", ErrInvalidInput)
	ErrUnsupportedImage     = fmt.Errorf("%w: unsupported image format", ErrInvalidInput)
	ErrInvalidIDToken       = fmt.Errorf("%w: invalid id token", ErrUnauthorized)
)

var (
	ErrNotOfficer          = fmt.Errorf("%w: officer only", ErrForbidden)
	ErrWrongApplicantState = fmt.Errorf("%w: invalid applicant status", ErrForbidden)
	ErrAlreadyMember       = fmt.Errorf("%w: already a member", ErrForbidden)
	ErrUnknownUser         = fmt.Errorf("%w: user not registered", ErrForbidden)
	ErrCategoryNotAllowed  = fmt.Errorf("%w: category not allowed", ErrForbidden)
	ErrDailyLimit          = fmt.Errorf("%w: daily limit reached", ErrForbidden)
	ErrNotAuthor           = fmt.Errorf("%w: not the author", ErrForbidden)
	ErrNoMemberCode        = fmt.Errorf("%w: member code required", ErrForbidden)
)

var (
	ErrUserNotFound         = fmt.Errorf("%w: member not found", ErrNotFound)
	ErrApplicantNotFound    = fmt.Errorf("%w: applicant not found", ErrNotFound)
	ErrPostNotFound         = fmt.Errorf("%w: post not found", ErrNotFound)
	ErrCommentNotFound      = fmt.Errorf("%w: comment not found", ErrNotFound)
	ErrOrganizationNotFound = fmt.Errorf("%w: organization not found", ErrNotFound)
)
