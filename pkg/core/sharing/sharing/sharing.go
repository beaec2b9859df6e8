package sharing

import (
	// 外部依赖
	"context"

	// 内部引用
	common "github.com/scienceol/labdesk/pkg/common"
	code "github.com/scienceol/labdesk/pkg/common/code"
	dashboard "github.com/scienceol/labdesk/pkg/core/dashboard"
	core "github.com/scienceol/labdesk/pkg/core/sharing"
	logger "github.com/scienceol/labdesk/pkg/middleware/logger"
	session "github.com/scienceol/labdesk/pkg/middleware/session"
	model "github.com/scienceol/labdesk/pkg/model"
	repo "github.com/scienceol/labdesk/pkg/repo"
	utils "github.com/scienceol/labdesk/pkg/utils"
)

type sharingImpl struct {
	sess  *session.Store
	tools repo.SharedTools
}

func New(sess *session.Store, tools repo.SharedTools) core.Service {
	return &sharingImpl{sess: sess, tools: tools}
}

func (s *sharingImpl) Browse(ctx context.Context, req *core.BrowseReq) ([]*core.ToolView, error) {
	user := s.sess.Identity()
	if user == nil {
		return nil, code.UnLogin
	}

	list, err := s.tools.List(ctx)
	if err != nil {
		return nil, err
	}

	return utils.FilterSlice(list, func(tool *model.SharedTool) (*core.ToolView, bool) {
		view := toView(tool, user.ID)
		if req.Scope == core.ScopeMine && !view.Mine {
			return nil, false
		}
		return view, dashboard.MatchesSearch(req.Search, view.Name, view.Description, view.OwnerName)
	}), nil
}

func (s *sharingImpl) Create(ctx context.Context, req *core.CreateReq) (*core.ToolView, error) {
	user := s.sess.Identity()
	if user == nil {
		return nil, code.UnLogin
	}
	if !user.Role.Allowed(common.ShareTools) {
		return nil, code.RoleDenied
	}

	created, err := s.tools.Create(ctx, &model.CreateSharedToolRequest{
		ToolName:       req.ToolName,
		Description:    req.Description,
		ImageURL:       req.ImageURL,
		OwnerStudentID: user.ID,
	})
	if err != nil {
		logger.Errorf(ctx, "CreateSharedTool err: %+v tool: %s", err, req.ToolName)
		return nil, err
	}

	return toView(created, user.ID), nil
}

// Delete looks the tool up first: only the owner may delete, and the rule
// is enforced before the request leaves the client.
func (s *sharingImpl) Delete(ctx context.Context, toolID int64) error {
	user := s.sess.Identity()
	if user == nil {
		return code.UnLogin
	}

	list, err := s.tools.List(ctx)
	if err != nil {
		return err
	}

	var target *model.SharedTool
	for _, tool := range list {
		if tool.ToolID == toolID {
			target = tool
			break
		}
	}
	if target == nil {
		return code.RecordNotFound
	}
	if target.Owner.StudentID != user.ID {
		return code.NotOwner
	}

	return s.tools.Delete(ctx, toolID, user.ID)
}

func toView(tool *model.SharedTool, currentUserID int64) *core.ToolView {
	return &core.ToolView{
		ID:          tool.ToolID,
		Name:        tool.ToolName,
		Description: tool.Description,
		ImageURL:    tool.ImageURL,
		OwnerID:     tool.Owner.StudentID,
		OwnerName:   tool.Owner.Name,
		OwnerEmail:  tool.Contact(),
		Mine:        tool.Owner.StudentID == currentUserID,
	}
}
