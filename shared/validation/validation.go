// Package validation holds the input validators services depend on.
package validation

import (
	"github.com/go-playground/validator/v10"

	"github.com/nhb-dev/helpboard/shared/errors"
)

// postRules covers the fields a post cannot be stored without. Trimming
// happens before validation, so a whitespace-only title fails "required".
type postRules struct {
	Type  string `validate:"required,oneof=request offer for-sale"`
	Title string `validate:"required,max=120"`
}

type commentRules struct {
	Text string `validate:"required,max=1000"`
}

type PostValidator struct {
	validate *validator.Validate
}

func NewPostValidator() *PostValidator {
	return &PostValidator{validate: validator.New()}
}

func (v *PostValidator) Post(postType, title string) error {
	if err := v.validate.Struct(postRules{Type: postType, Title: title}); err != nil {
		return &errors.ValidationError{Message: "a post needs a title and a valid type"}
	}
	return nil
}

type CommentValidator struct {
	validate *validator.Validate
}

func NewCommentValidator() *CommentValidator {
	return &CommentValidator{validate: validator.New()}
}

func (v *CommentValidator) Text(text string) error {
	if err := v.validate.Struct(commentRules{Text: text}); err != nil {
		return &errors.ValidationError{Message: "a comment needs some text"}
	}
	return nil
}
