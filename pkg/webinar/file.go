// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package webinar

import "encoding/json"

// File kinds reported in "type" or "typeFile".
const (
	FileTypeFolder       = "folder"
	FileTypeVideo        = "video"
	FileTypePresentation = "presentation"
	FileTypeTest         = "test"
	FileTypeRecord       = "record"
	FileTypeConversion   = "conversion"
)

// Slide is one page of a presentation.
type Slide struct {
	ID        *int64  `json:"id,omitempty"`
	Number    *int    `json:"number,omitempty"`
	URL       *string `json:"url,omitempty"`
	Thumbnail *string `json:"thumbnail,omitempty"`
}

// File is an entry of the file system: a folder, an uploaded file or a
// recording. Fields of the groups a kind does not use stay nil.
type File struct {
	// Common fields.
	ID           *int64          `json:"id,omitempty"`
	Name         *string         `json:"name,omitempty"`
	Type         *string         `json:"type,omitempty"`
	TypeFile     *string         `json:"typeFile,omitempty"`
	Parent       json.RawMessage `json:"parent,omitempty"`
	Size         *int64          `json:"size,omitempty"`
	URL          *string         `json:"url,omitempty"`
	DownloadURL  *string         `json:"downloadUrl,omitempty"`
	CreateAt     *DateTime       `json:"createAt,omitempty"`
	IsShared     *bool           `json:"isShared,omitempty"`
	CreateUser   *User           `json:"createUser,omitempty"`
	EventSession *EventSession   `json:"eventSession,omitempty"`
	Thumbnail    json.RawMessage `json:"thumbnail,omitempty"`

	// Video.
	Duration *int64  `json:"duration,omitempty"`
	VideoURL *string `json:"videoUrl,omitempty"`
	Link     *string `json:"link,omitempty"`

	// Presentation.
	Slides     []Slide `json:"slides,omitempty"`
	SlideCount *int    `json:"slideCount,omitempty"`

	// Test.
	Questions      json.RawMessage `json:"questions,omitempty"`
	QuestionsCount *int            `json:"questionsCount,omitempty"`

	// Recording and conversion.
	EventSessionID   *int64    `json:"eventSessionId,omitempty"`
	ConversionStatus *string   `json:"conversionStatus,omitempty"`
	RecordStatus     *string   `json:"recordStatus,omitempty"`
	StartsAt         *DateTime `json:"startsAt,omitempty"`
	EndsAt           *DateTime `json:"endsAt,omitempty"`
}

// Kind returns typeFile when present, otherwise type.
func (f File) Kind() string {
	if f.TypeFile != nil && *f.TypeFile != "" {
		return *f.TypeFile
	}
	if f.Type != nil {
		return *f.Type
	}
	return ""
}

func (f File) IsFolder() bool { return f.Kind() == FileTypeFolder }

func (f File) IsVideo() bool { return f.Kind() == FileTypeVideo }

func (f File) IsPresentation() bool { return f.Kind() == FileTypePresentation }

func (f File) IsTest() bool { return f.Kind() == FileTypeTest }

// IsRecording covers both raw records and their conversions.
func (f File) IsRecording() bool {
	k := f.Kind()
	return k == FileTypeRecord || k == FileTypeConversion
}
