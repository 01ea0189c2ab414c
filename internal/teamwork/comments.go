package teamwork

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/philipdalen/mcp-workspace/internal/markup"
	"github.com/philipdalen/mcp-workspace/internal/toolkit"
)

var commentResources = []string{"tasks", "milestones", "notebooks", "links", "fileversions"}

type createCommentArgs struct {
	Resource               string `json:"resource" jsonschema:"enum=tasks,enum=milestones,enum=notebooks,enum=links,enum=fileversions" jsonschema_description:"The resource type (tasks, milestones, notebooks, links, fileversions)"`
	ResourceID             string `json:"resourceId" jsonschema_description:"The ID of the resource to add a comment to"`
	Body                   string `json:"body" jsonschema_description:"The content of the comment. With contentType html, Markdown is converted to HTML."`
	Notify                 string `json:"notify,omitempty" jsonschema_description:"Who to notify ('all' to notify all project users, 'true' to notify followers, specific user IDs, or empty for no notification)"`
	IsPrivate              bool   `json:"isPrivate,omitempty" jsonschema_description:"Whether the comment should be private"`
	PendingFileAttachments string `json:"pendingFileAttachments,omitempty" jsonschema_description:"Comma-separated list of pending file references to attach to the comment"`
	ContentType            string `json:"contentType,omitempty" jsonschema:"enum=html,enum=plaintext" jsonschema_description:"Content type of the comment (html or plain text)"`
	AuthorID               string `json:"authorId,omitempty" jsonschema_description:"ID of the user to post as (only for admins)"`
}

// CreateComment posts a comment on a task, milestone, notebook, link or
// file version through the v1 API.
func (h *Handlers) CreateComment(ctx context.Context, _ mcp.CallToolRequest, args createCommentArgs) (*mcp.CallToolResult, error) {
	const failure = "Error creating comment"
	if !slices.Contains(commentResources, args.Resource) {
		return toolkit.ErrorResultf("%s: Invalid resource type. Must be one of: %s", failure, strings.Join(commentResources, ", ")), nil
	}
	if args.ResourceID == "" || args.Body == "" {
		return toolkit.ErrorResultf("%s: resourceId and body are required", failure), nil
	}

	contentType := args.ContentType
	if contentType == "" {
		contentType = "plaintext"
	}
	body := args.Body
	if contentType == "html" {
		body = markup.ToHTML(body)
	}

	comment := map[string]any{
		"body":         body,
		"notify":       args.Notify,
		"isprivate":    args.IsPrivate,
		"content-type": contentType,
	}
	if args.PendingFileAttachments != "" {
		comment["pendingFileAttachments"] = args.PendingFileAttachments
	}
	if args.AuthorID != "" {
		comment["author-id"] = args.AuthorID
	}

	data, err := h.v1.Post(ctx, fmt.Sprintf("%s/%s/comments.json", args.Resource, args.ResourceID), map[string]any{"comment": comment})
	return h.respond(data, err, failure), nil
}
