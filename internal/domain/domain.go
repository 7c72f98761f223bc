package domain

import (
	"github.com/gyansetu/gyansetu-backend/internal/domain/assessment"
	"github.com/gyansetu/gyansetu-backend/internal/domain/content"
	"github.com/gyansetu/gyansetu-backend/internal/domain/user"
)

type User = user.User
type Role = user.Role

const (
	RoleStudent = user.RoleStudent
	RoleExpert  = user.RoleExpert
	RoleAdmin   = user.RoleAdmin
)

type Material = content.Material
type Video = content.Video
type ContentType = content.ContentType

const (
	ContentMaterial = content.TypeMaterial
	ContentSyllabus = content.TypeSyllabus
	ContentPYP      = content.TypePYP
)

type Question = assessment.Question
type TestAttempt = assessment.TestAttempt

var (
	ParseRole        = user.ParseRole
	ParseContentType = content.ParseContentType
	IsPDFURL         = content.IsPDFURL
)
