// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/posters-science/poster-tracker/db/ent/schema"
	"github.com/posters-science/poster-tracker/gen/ent/extractionjob"
	"github.com/posters-science/poster-tracker/gen/ent/poster"
	"github.com/posters-science/poster-tracker/gen/ent/postermetadata"
	"github.com/posters-science/poster-tracker/gen/ent/user"
	"github.com/posters-science/poster-tracker/gen/ent/zenodotoken"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	extractionjobFields := schema.ExtractionJob{}.Fields()
	_ = extractionjobFields
	// extractionjobDescStatus is the schema descriptor for status field.
	extractionjobDescStatus := extractionjobFields[3].Descriptor()
	// extractionjob.DefaultStatus holds the default value on creation for the status field.
	extractionjob.DefaultStatus = extractionjobDescStatus.Default.(string)
	// extractionjob.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	extractionjob.StatusValidator = extractionjobDescStatus.Validators[0].(func(string) error)
	// extractionjobDescCreatedAt is the schema descriptor for created_at field.
	extractionjobDescCreatedAt := extractionjobFields[5].Descriptor()
	// extractionjob.DefaultCreatedAt holds the default value on creation for the created_at field.
	extractionjob.DefaultCreatedAt = extractionjobDescCreatedAt.Default.(func() time.Time)
	// extractionjobDescUpdatedAt is the schema descriptor for updated_at field.
	extractionjobDescUpdatedAt := extractionjobFields[6].Descriptor()
	// extractionjob.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	extractionjob.DefaultUpdatedAt = extractionjobDescUpdatedAt.Default.(func() time.Time)
	// extractionjob.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	extractionjob.UpdateDefaultUpdatedAt = extractionjobDescUpdatedAt.UpdateDefault.(func() time.Time)
	// extractionjobDescID is the schema descriptor for id field.
	extractionjobDescID := extractionjobFields[0].Descriptor()
	// extractionjob.DefaultID holds the default value on creation for the id field.
	extractionjob.DefaultID = extractionjobDescID.Default.(func() uuid.UUID)
	posterFields := schema.Poster{}.Fields()
	_ = posterFields
	// posterDescTitle is the schema descriptor for title field.
	posterDescTitle := posterFields[2].Descriptor()
	// poster.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	poster.TitleValidator = posterDescTitle.Validators[0].(func(string) error)
	// posterDescStatus is the schema descriptor for status field.
	posterDescStatus := posterFields[4].Descriptor()
	// poster.DefaultStatus holds the default value on creation for the status field.
	poster.DefaultStatus = posterDescStatus.Default.(string)
	// poster.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	poster.StatusValidator = posterDescStatus.Validators[0].(func(string) error)
	// posterDescCreatedAt is the schema descriptor for created_at field.
	posterDescCreatedAt := posterFields[6].Descriptor()
	// poster.DefaultCreatedAt holds the default value on creation for the created_at field.
	poster.DefaultCreatedAt = posterDescCreatedAt.Default.(func() time.Time)
	// posterDescUpdatedAt is the schema descriptor for updated_at field.
	posterDescUpdatedAt := posterFields[7].Descriptor()
	// poster.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	poster.DefaultUpdatedAt = posterDescUpdatedAt.Default.(func() time.Time)
	// poster.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	poster.UpdateDefaultUpdatedAt = posterDescUpdatedAt.UpdateDefault.(func() time.Time)
	// posterDescID is the schema descriptor for id field.
	posterDescID := posterFields[0].Descriptor()
	// poster.DefaultID holds the default value on creation for the id field.
	poster.DefaultID = posterDescID.Default.(func() uuid.UUID)
	postermetadataFields := schema.PosterMetadata{}.Fields()
	_ = postermetadataFields
	// postermetadataDescCreatedAt is the schema descriptor for created_at field.
	postermetadataDescCreatedAt := postermetadataFields[35].Descriptor()
	// postermetadata.DefaultCreatedAt holds the default value on creation for the created_at field.
	postermetadata.DefaultCreatedAt = postermetadataDescCreatedAt.Default.(func() time.Time)
	// postermetadataDescUpdatedAt is the schema descriptor for updated_at field.
	postermetadataDescUpdatedAt := postermetadataFields[36].Descriptor()
	// postermetadata.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	postermetadata.DefaultUpdatedAt = postermetadataDescUpdatedAt.Default.(func() time.Time)
	// postermetadata.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	postermetadata.UpdateDefaultUpdatedAt = postermetadataDescUpdatedAt.UpdateDefault.(func() time.Time)
	// postermetadataDescID is the schema descriptor for id field.
	postermetadataDescID := postermetadataFields[0].Descriptor()
	// postermetadata.DefaultID holds the default value on creation for the id field.
	postermetadata.DefaultID = postermetadataDescID.Default.(func() uuid.UUID)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[1].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[3].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userFields[4].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescID is the schema descriptor for id field.
	userDescID := userFields[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
	zenodotokenFields := schema.ZenodoToken{}.Fields()
	_ = zenodotokenFields
	// zenodotokenDescAccessToken is the schema descriptor for access_token field.
	zenodotokenDescAccessToken := zenodotokenFields[2].Descriptor()
	// zenodotoken.AccessTokenValidator is a validator for the "access_token" field. It is called by the builders before save.
	zenodotoken.AccessTokenValidator = zenodotokenDescAccessToken.Validators[0].(func(string) error)
	// zenodotokenDescRefreshToken is the schema descriptor for refresh_token field.
	zenodotokenDescRefreshToken := zenodotokenFields[3].Descriptor()
	// zenodotoken.RefreshTokenValidator is a validator for the "refresh_token" field. It is called by the builders before save.
	zenodotoken.RefreshTokenValidator = zenodotokenDescRefreshToken.Validators[0].(func(string) error)
	// zenodotokenDescCreatedAt is the schema descriptor for created_at field.
	zenodotokenDescCreatedAt := zenodotokenFields[5].Descriptor()
	// zenodotoken.DefaultCreatedAt holds the default value on creation for the created_at field.
	zenodotoken.DefaultCreatedAt = zenodotokenDescCreatedAt.Default.(func() time.Time)
	// zenodotokenDescUpdatedAt is the schema descriptor for updated_at field.
	zenodotokenDescUpdatedAt := zenodotokenFields[6].Descriptor()
	// zenodotoken.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	zenodotoken.DefaultUpdatedAt = zenodotokenDescUpdatedAt.Default.(func() time.Time)
	// zenodotoken.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	zenodotoken.UpdateDefaultUpdatedAt = zenodotokenDescUpdatedAt.UpdateDefault.(func() time.Time)
	// zenodotokenDescID is the schema descriptor for id field.
	zenodotokenDescID := zenodotokenFields[0].Descriptor()
	// zenodotoken.DefaultID holds the default value on creation for the id field.
	zenodotoken.DefaultID = zenodotokenDescID.Default.(func() uuid.UUID)
}
