package gateway

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation"

	"github.com/concon121/aws-conduit/internal/awsapi"
	cerrors "github.com/concon121/aws-conduit/internal/errors"
)

// CloudFormation wraps template inspection calls.
type CloudFormation struct {
	api awsapi.CloudFormationAPI
}

// NewCloudFormation creates a CloudFormation wrapper around the given API
// implementation.
func NewCloudFormation(api awsapi.CloudFormationAPI) *CloudFormation {
	return &CloudFormation{api: api}
}

// TemplateParameter describes a parameter declared by a template.
type TemplateParameter struct {
	Key         string
	Description string
	Default     string
}

// TemplateParameters validates a template at the given URL and returns the
// parameters it declares. An invalid template surfaces as a remote failure.
func (c *CloudFormation) TemplateParameters(ctx context.Context, templateURL string) ([]TemplateParameter, error) {
	out, err := c.api.GetTemplateSummary(ctx, &cloudformation.GetTemplateSummaryInput{
		TemplateURL: aws.String(templateURL),
	})
	if err != nil {
		return nil, cerrors.Remote("cloudformation.template-summary", err).WithEntity("template", templateURL)
	}
	params := make([]TemplateParameter, 0, len(out.Parameters))
	for _, p := range out.Parameters {
		params = append(params, TemplateParameter{
			Key:         aws.ToString(p.ParameterKey),
			Description: aws.ToString(p.Description),
			Default:     aws.ToString(p.DefaultValue),
		})
	}
	return params, nil
}
