package services

import (
  "context"
  "errors"
  "net/http"
  "testing"

  "github.com/mindnest/mindnest-backend/internal/achievements"
  "github.com/mindnest/mindnest-backend/internal/platform/apierr"
)

func apiStatus(t *testing.T, err error) int {
  t.Helper()
  var apiError *apierr.Error
  if !errors.As(err, &apiError) {
    t.Fatalf("want apierr.Error got %T: %v", err, err)
  }
  return apiError.Status
}

func TestCreatePostAwardsPointsAndFirstBadge(t *testing.T) {
  env := newTestEnv(t)
  user := env.createUser(t, "author@example.com")
  svc := env.postService()

  post, err := svc.Create(authedCtx(user.ID), "  sharing my story  ")
  if err != nil {
    t.Fatalf("Create: %v", err)
  }
  if post.Content != "sharing my story" {
    t.Fatalf("content not trimmed: %q", post.Content)
  }
  if post.AnonymousName != user.AnonymousName {
    t.Fatalf("anonymous name: want=%q got=%q", user.AnonymousName, post.AnonymousName)
  }

  wantPoints := achievements.PointsCreatePost + achievements.PointsBadgeBonus
  if points := env.userPoints(t, user.ID); points != wantPoints {
    t.Fatalf("points: want=%d got=%d", wantPoints, points)
  }
  names := env.userBadgeNames(t, user.ID)
  if len(names) != 1 || names[0] != "First Steps" {
    t.Fatalf("unexpected badges: %v", names)
  }
}

func TestCreatePostRequiresContent(t *testing.T) {
  env := newTestEnv(t)
  user := env.createUser(t, "empty@example.com")
  svc := env.postService()

  _, err := svc.Create(authedCtx(user.ID), "   ")
  if err == nil {
    t.Fatalf("expected error")
  }
  if status := apiStatus(t, err); status != http.StatusBadRequest {
    t.Fatalf("status: want=400 got=%d", status)
  }
}

func TestCreatePostRequiresAuth(t *testing.T) {
  env := newTestEnv(t)
  svc := env.postService()

  _, err := svc.Create(context.Background(), "hello")
  if !errors.Is(err, ErrNotAuthenticated) {
    t.Fatalf("want ErrNotAuthenticated got %v", err)
  }
}

func TestUpdatePostOwnershipEnforced(t *testing.T) {
  env := newTestEnv(t)
  owner := env.createUser(t, "owner@example.com")
  other := env.createUser(t, "other@example.com")
  svc := env.postService()

  post, err := svc.Create(authedCtx(owner.ID), "original")
  if err != nil {
    t.Fatalf("Create: %v", err)
  }

  if _, err := svc.Update(authedCtx(other.ID), post.ID, "hijacked"); !errors.Is(err, ErrNotAuthorized) {
    t.Fatalf("want ErrNotAuthorized got %v", err)
  }
  if err := svc.Delete(authedCtx(other.ID), post.ID); !errors.Is(err, ErrNotAuthorized) {
    t.Fatalf("want ErrNotAuthorized got %v", err)
  }

  updated, err := svc.Update(authedCtx(owner.ID), post.ID, "edited")
  if err != nil {
    t.Fatalf("Update: %v", err)
  }
  if updated.Content != "edited" {
    t.Fatalf("content: want=%q got=%q", "edited", updated.Content)
  }
}

func TestAddCommentAwardsBothSides(t *testing.T) {
  env := newTestEnv(t)
  owner := env.createUser(t, "poster@example.com")
  commenter := env.createUser(t, "commenter@example.com")
  svc := env.postService()

  post, err := svc.Create(authedCtx(owner.ID), "talk to me")
  if err != nil {
    t.Fatalf("Create: %v", err)
  }
  ownerPointsBefore := env.userPoints(t, owner.ID)

  withComment, err := svc.AddComment(authedCtx(commenter.ID), post.ID, "you are not alone")
  if err != nil {
    t.Fatalf("AddComment: %v", err)
  }
  if len(withComment.Comments) != 1 {
    t.Fatalf("comment count: want=1 got=%d", len(withComment.Comments))
  }

  if points := env.userPoints(t, commenter.ID); points != achievements.PointsAddComment {
    t.Fatalf("commenter points: want=%d got=%d", achievements.PointsAddComment, points)
  }
  if points := env.userPoints(t, owner.ID); points != ownerPointsBefore+achievements.PointsReceiveComment {
    t.Fatalf("owner points: want=%d got=%d", ownerPointsBefore+achievements.PointsReceiveComment, points)
  }
}

func TestSelfCommentAwardsOnlyOnce(t *testing.T) {
  env := newTestEnv(t)
  owner := env.createUser(t, "selfcomment@example.com")
  svc := env.postService()

  post, err := svc.Create(authedCtx(owner.ID), "note to self")
  if err != nil {
    t.Fatalf("Create: %v", err)
  }
  before := env.userPoints(t, owner.ID)

  if _, err := svc.AddComment(authedCtx(owner.ID), post.ID, "me again"); err != nil {
    t.Fatalf("AddComment: %v", err)
  }
  if points := env.userPoints(t, owner.ID); points != before+achievements.PointsAddComment {
    t.Fatalf("self comment points: want=%d got=%d", before+achievements.PointsAddComment, points)
  }
}

func TestToggleReactionLifecycle(t *testing.T) {
  env := newTestEnv(t)
  owner := env.createUser(t, "reacted@example.com")
  reactor := env.createUser(t, "reactor@example.com")
  svc := env.postService()
  ctx := context.Background()

  post, err := svc.Create(authedCtx(owner.ID), "send support")
  if err != nil {
    t.Fatalf("Create: %v", err)
  }
  ownerAfterCreate := env.userPoints(t, owner.ID)

  // Add
  withReaction, err := svc.ToggleReaction(authedCtx(reactor.ID), post.ID, "heart")
  if err != nil {
    t.Fatalf("ToggleReaction add: %v", err)
  }
  if len(withReaction.Reactions) != 1 || withReaction.Reactions[0].Type != "heart" {
    t.Fatalf("unexpected reactions: %+v", withReaction.Reactions)
  }
  if points := env.userPoints(t, reactor.ID); points != achievements.PointsAddReaction {
    t.Fatalf("reactor points: want=%d got=%d", achievements.PointsAddReaction, points)
  }
  if points := env.userPoints(t, owner.ID); points != ownerAfterCreate+achievements.PointsReceiveReaction {
    t.Fatalf("owner points: want=%d got=%d", ownerAfterCreate+achievements.PointsReceiveReaction, points)
  }

  // Switch type: no extra points
  switched, err := svc.ToggleReaction(authedCtx(reactor.ID), post.ID, "hug")
  if err != nil {
    t.Fatalf("ToggleReaction switch: %v", err)
  }
  if len(switched.Reactions) != 1 || switched.Reactions[0].Type != "hug" {
    t.Fatalf("unexpected reactions after switch: %+v", switched.Reactions)
  }
  if points := env.userPoints(t, reactor.ID); points != achievements.PointsAddReaction {
    t.Fatalf("switch must not award points, got=%d", points)
  }

  // Same type: removes
  removed, err := svc.ToggleReaction(authedCtx(reactor.ID), post.ID, "hug")
  if err != nil {
    t.Fatalf("ToggleReaction remove: %v", err)
  }
  if len(removed.Reactions) != 0 {
    t.Fatalf("reaction should be removed, got %+v", removed.Reactions)
  }
  existing, err := env.reactionRepo.GetByPostAndUser(ctx, nil, post.ID, reactor.ID)
  if err != nil {
    t.Fatalf("GetByPostAndUser: %v", err)
  }
  if existing != nil {
    t.Fatalf("reaction row still present: %+v", existing)
  }
}

func TestToggleReactionRejectsUnknownType(t *testing.T) {
  env := newTestEnv(t)
  user := env.createUser(t, "badreaction@example.com")
  svc := env.postService()

  post, err := svc.Create(authedCtx(user.ID), "hi")
  if err != nil {
    t.Fatalf("Create: %v", err)
  }
  _, err = svc.ToggleReaction(authedCtx(user.ID), post.ID, "thumbsdown")
  if err == nil {
    t.Fatalf("expected error")
  }
  if status := apiStatus(t, err); status != http.StatusBadRequest {
    t.Fatalf("status: want=400 got=%d", status)
  }
}

func TestReportPostOncePerUser(t *testing.T) {
  env := newTestEnv(t)
  owner := env.createUser(t, "reportee@example.com")
  reporter := env.createUser(t, "reporter@example.com")
  svc := env.postService()

  post, err := svc.Create(authedCtx(owner.ID), "questionable")
  if err != nil {
    t.Fatalf("Create: %v", err)
  }

  reported, err := svc.Report(authedCtx(reporter.ID), post.ID, "spam", "looks automated")
  if err != nil {
    t.Fatalf("Report: %v", err)
  }
  if len(reported.Reports) != 1 || reported.Reports[0].Status != "pending" {
    t.Fatalf("unexpected reports: %+v", reported.Reports)
  }

  _, err = svc.Report(authedCtx(reporter.ID), post.ID, "spam", "again")
  if err == nil {
    t.Fatalf("duplicate report should fail")
  }
  if status := apiStatus(t, err); status != http.StatusBadRequest {
    t.Fatalf("status: want=400 got=%d", status)
  }
}

func TestCommentedPostsCountDistinct(t *testing.T) {
  env := newTestEnv(t)
  owner := env.createUser(t, "distinctowner@example.com")
  commenter := env.createUser(t, "distinctcommenter@example.com")
  svc := env.postService()

  post, err := svc.Create(authedCtx(owner.ID), "talk to me")
  if err != nil {
    t.Fatalf("Create: %v", err)
  }
  if _, err := svc.AddComment(authedCtx(commenter.ID), post.ID, "first"); err != nil {
    t.Fatalf("AddComment: %v", err)
  }
  if _, err := svc.AddComment(authedCtx(commenter.ID), post.ID, "second"); err != nil {
    t.Fatalf("AddComment: %v", err)
  }

  n, err := env.commentRepo.CountDistinctPostsByUserID(context.Background(), nil, commenter.ID)
  if err != nil {
    t.Fatalf("count: %v", err)
  }
  if n != 1 {
    t.Fatalf("distinct commented posts: want=1 got=%d", n)
  }
}
