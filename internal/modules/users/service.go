package users

import (
	"context"
	"sync/atomic"

	"github.com/priyanka857/Major-Project-1/internal/api"
	"github.com/priyanka857/Major-Project-1/internal/modules/session"
	"github.com/priyanka857/Major-Project-1/internal/shared/apperr"
	"github.com/priyanka857/Major-Project-1/internal/store"
)

type Service struct {
	api      *api.Client
	dispatch store.Dispatch
	token    session.TokenSource

	listSeq   atomic.Uint64
	detailSeq atomic.Uint64
}

func NewService(c *api.Client, dispatch store.Dispatch, token session.TokenSource) *Service {
	return &Service{api: c, dispatch: dispatch, token: token}
}

func (s *Service) List(ctx context.Context) error {
	seq := s.listSeq.Add(1)
	s.dispatch(ListRequested{Seq: seq})

	items, err := s.api.ListUsers(ctx, s.token())
	if err != nil {
		s.dispatch(ListFailed{Seq: seq, Message: apperr.Message(err)})
		return err
	}

	s.dispatch(ListLoaded{Seq: seq, Users: items})
	return nil
}

func (s *Service) Details(ctx context.Context, id int) error {
	seq := s.detailSeq.Add(1)
	s.dispatch(DetailRequested{Seq: seq})

	u, err := s.api.GetUser(ctx, s.token(), id)
	if err != nil {
		s.dispatch(DetailFailed{Seq: seq, Message: apperr.Message(err)})
		return err
	}

	s.dispatch(DetailLoaded{Seq: seq, User: u})
	return nil
}

func (s *Service) Update(ctx context.Context, id int, in api.UserUpdateRequest) error {
	s.dispatch(UpdateRequested{})

	u, err := s.api.UpdateUser(ctx, s.token(), id, in)
	if err != nil {
		s.dispatch(UpdateFailed{Message: apperr.Message(err)})
		return err
	}

	s.dispatch(UpdateSucceeded{User: u})
	return nil
}

func (s *Service) Delete(ctx context.Context, id int) error {
	s.dispatch(DeleteRequested{})

	if err := s.api.DeleteUser(ctx, s.token(), id); err != nil {
		s.dispatch(DeleteFailed{Message: apperr.Message(err)})
		return err
	}

	s.dispatch(DeleteSucceeded{})
	return nil
}

func (s *Service) ResetUpdate() { s.dispatch(UpdateReset{}) }
func (s *Service) ResetDelete() { s.dispatch(DeleteReset{}) }
func (s *Service) ResetDetail() { s.dispatch(DetailReset{}) }
