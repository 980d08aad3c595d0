package repositories

import "github.com/rios0rios0/localguide/internal/domain/entities"

// GuideWriterRepository delivers a generated guide somewhere outside the process.
type GuideWriterRepository interface {
	// Write stores the guide and returns a description of where it went.
	Write(guide *entities.Guide) (string, error)
}
