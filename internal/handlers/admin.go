package handlers

import (
  "errors"
  "net/http"
  "strconv"
  "github.com/gin-gonic/gin"
  "github.com/mindnest/mindnest-backend/internal/services"
)

type AdminHandler struct {
  adminService services.AdminService
}

func NewAdminHandler(adminService services.AdminService) *AdminHandler {
  return &AdminHandler{adminService: adminService}
}

func (ah *AdminHandler) DashboardStats(c *gin.Context) {
  stats, err := ah.adminService.GetDashboardStats(c.Request.Context())
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, stats)
}

func (ah *AdminHandler) ListUsers(c *gin.Context) {
  page, _ := strconv.Atoi(c.Query("page"))
  limit, _ := strconv.Atoi(c.Query("limit"))

  result, err := ah.adminService.ListUsers(c.Request.Context(), c.Query("role"), c.Query("search"), page, limit)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, result)
}

func (ah *AdminHandler) UpdateUserRole(c *gin.Context) {
  userID, ok := pathUUID(c, "userId")
  if !ok {
    return
  }
  var req struct {
    Role string `json:"role"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_body", errors.New("invalid request body"))
    return
  }
  user, err := ah.adminService.UpdateUserRole(c.Request.Context(), userID, req.Role)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, gin.H{"user": user})
}

func (ah *AdminHandler) ToggleUserStatus(c *gin.Context) {
  userID, ok := pathUUID(c, "userId")
  if !ok {
    return
  }
  user, err := ah.adminService.ToggleUserStatus(c.Request.Context(), userID)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, gin.H{"user": user})
}

func (ah *AdminHandler) DeleteUser(c *gin.Context) {
  userID, ok := pathUUID(c, "userId")
  if !ok {
    return
  }
  if err := ah.adminService.DeleteUser(c.Request.Context(), userID); err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, gin.H{"message": "user and their data deleted"})
}

func (ah *AdminHandler) ListPosts(c *gin.Context) {
  page, _ := strconv.Atoi(c.Query("page"))
  limit, _ := strconv.Atoi(c.Query("limit"))

  result, err := ah.adminService.ListPosts(c.Request.Context(), page, limit)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, result)
}

func (ah *AdminHandler) TogglePostModeration(c *gin.Context) {
  postID, ok := pathUUID(c, "postId")
  if !ok {
    return
  }
  post, err := ah.adminService.TogglePostModeration(c.Request.Context(), postID)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, gin.H{"post": post})
}

func (ah *AdminHandler) DeletePost(c *gin.Context) {
  postID, ok := pathUUID(c, "postId")
  if !ok {
    return
  }
  if err := ah.adminService.DeletePost(c.Request.Context(), postID); err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, gin.H{"message": "post deleted"})
}

func (ah *AdminHandler) ListReports(c *gin.Context) {
  reports, err := ah.adminService.ListReports(c.Request.Context(), c.Query("status"))
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, gin.H{"reports": reports, "total": len(reports)})
}

func (ah *AdminHandler) UpdateReportStatus(c *gin.Context) {
  reportID, ok := pathUUID(c, "reportId")
  if !ok {
    return
  }
  var req struct {
    Status string `json:"status"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_body", errors.New("invalid request body"))
    return
  }
  if err := ah.adminService.UpdateReportStatus(c.Request.Context(), reportID, req.Status); err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, gin.H{"message": "report status updated"})
}
