package handlers

import (
  "errors"
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/google/uuid"
  "github.com/mindnest/mindnest-backend/internal/services"
)

type PostHandler struct {
  postService services.PostService
}

func NewPostHandler(postService services.PostService) *PostHandler {
  return &PostHandler{postService: postService}
}

func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
  id, err := uuid.Parse(c.Param(name))
  if err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_id", errors.New("invalid id"))
    return uuid.Nil, false
  }
  return id, true
}

func (ph *PostHandler) Create(c *gin.Context) {
  var req struct {
    Content string `json:"content"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_body", errors.New("invalid request body"))
    return
  }
  post, err := ph.postService.Create(c.Request.Context(), req.Content)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondCreated(c, gin.H{"post": post})
}

func (ph *PostHandler) List(c *gin.Context) {
  posts, err := ph.postService.List(c.Request.Context())
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, gin.H{"posts": posts})
}

func (ph *PostHandler) MyPosts(c *gin.Context) {
  posts, err := ph.postService.MyPosts(c.Request.Context())
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, gin.H{"posts": posts})
}

func (ph *PostHandler) Update(c *gin.Context) {
  postID, ok := pathUUID(c, "postId")
  if !ok {
    return
  }
  var req struct {
    Content string `json:"content"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_body", errors.New("invalid request body"))
    return
  }
  post, err := ph.postService.Update(c.Request.Context(), postID, req.Content)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, gin.H{"post": post})
}

func (ph *PostHandler) Delete(c *gin.Context) {
  postID, ok := pathUUID(c, "postId")
  if !ok {
    return
  }
  if err := ph.postService.Delete(c.Request.Context(), postID); err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, gin.H{"message": "post deleted"})
}

func (ph *PostHandler) AddComment(c *gin.Context) {
  postID, ok := pathUUID(c, "postId")
  if !ok {
    return
  }
  var req struct {
    Content string `json:"content"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_body", errors.New("invalid request body"))
    return
  }
  post, err := ph.postService.AddComment(c.Request.Context(), postID, req.Content)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondCreated(c, gin.H{"post": post})
}

func (ph *PostHandler) ToggleReaction(c *gin.Context) {
  postID, ok := pathUUID(c, "postId")
  if !ok {
    return
  }
  var req struct {
    Type string `json:"type"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_body", errors.New("invalid request body"))
    return
  }
  post, err := ph.postService.ToggleReaction(c.Request.Context(), postID, req.Type)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, gin.H{"post": post})
}

func (ph *PostHandler) Report(c *gin.Context) {
  postID, ok := pathUUID(c, "postId")
  if !ok {
    return
  }
  var req struct {
    Reason      string `json:"reason"`
    Description string `json:"description"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_body", errors.New("invalid request body"))
    return
  }
  post, err := ph.postService.Report(c.Request.Context(), postID, req.Reason, req.Description)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondCreated(c, gin.H{"post": post})
}
