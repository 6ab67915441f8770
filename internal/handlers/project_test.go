package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/vivekmishra22/DevVoid-Task-Manager-Project/internal/models"
	"github.com/vivekmishra22/DevVoid-Task-Manager-Project/internal/repository"
	"github.com/vivekmishra22/DevVoid-Task-Manager-Project/internal/services"
)

// ProjectHandlerTestSuite defines the test suite for ProjectHandler
type ProjectHandlerTestSuite struct {
	suite.Suite
	db     *gorm.DB
	router *gin.Engine
}

// SetupTest runs before each test
func (suite *ProjectHandlerTestSuite) SetupTest() {
	var err error

	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	suite.Require().NoError(err)

	err = suite.db.AutoMigrate(&models.Project{}, &models.Task{})
	suite.Require().NoError(err)

	projectRepo := repository.NewProjectRepository(suite.db)
	handler := NewProjectHandler(services.NewProjectService(projectRepo))

	gin.SetMode(gin.TestMode)
	suite.router = gin.New()

	projects := suite.router.Group("/api/projects")
	projects.GET("", handler.ListProjects)
	projects.POST("", handler.CreateProject)
	projects.PUT("/:id", handler.UpdateProject)
	projects.DELETE("/:id", handler.DeleteProject)
}

// TearDownTest runs after each test
func (suite *ProjectHandlerTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *ProjectHandlerTestSuite) createTestProject(name string) *models.Project {
	project := &models.Project{Name: name, Description: "Test Description"}
	suite.db.Create(project)
	return project
}

func (suite *ProjectHandlerTestSuite) request(method, url string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *ProjectHandlerTestSuite) TestListProjects_Success() {
	suite.createTestProject("First")
	suite.createTestProject("Second")

	w := suite.request("GET", "/api/projects", nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response map[string]interface{}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	assert.Contains(suite.T(), response, "projects")
	assert.Contains(suite.T(), response, "pagination")

	projects := response["projects"].([]interface{})
	assert.Len(suite.T(), projects, 2)
}

func (suite *ProjectHandlerTestSuite) TestCreateProject_Success() {
	w := suite.request("POST", "/api/projects", gin.H{
		"name":        "Launch Plan",
		"description": "Everything needed for launch",
	})
	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var response map[string]interface{}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(suite.T(), "Launch Plan", response["name"])
	assert.NotZero(suite.T(), response["id"])
}

func (suite *ProjectHandlerTestSuite) TestCreateProject_MissingFields() {
	w := suite.request("POST", "/api/projects", gin.H{"name": "No description"})
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)

	w = suite.request("POST", "/api/projects", gin.H{"description": "No name"})
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *ProjectHandlerTestSuite) TestUpdateProject_PartialFields() {
	project := suite.createTestProject("Before")

	w := suite.request("PUT", "/api/projects/1", gin.H{"name": "After"})
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var stored models.Project
	suite.db.First(&stored, project.ID)
	assert.Equal(suite.T(), "After", stored.Name)
	assert.Equal(suite.T(), "Test Description", stored.Description)
}

func (suite *ProjectHandlerTestSuite) TestUpdateProject_NotFound() {
	w := suite.request("PUT", "/api/projects/999", gin.H{"name": "Ghost"})
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *ProjectHandlerTestSuite) TestUpdateProject_InvalidID() {
	w := suite.request("PUT", "/api/projects/abc", gin.H{"name": "Ghost"})
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *ProjectHandlerTestSuite) TestDeleteProject_Success() {
	project := suite.createTestProject("Doomed")

	w := suite.request("DELETE", "/api/projects/1", nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response map[string]interface{}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(suite.T(), "Project deleted successfully", response["message"])

	var count int64
	suite.db.Model(&models.Project{}).Where("id = ?", project.ID).Count(&count)
	assert.Equal(suite.T(), int64(0), count)
}

func (suite *ProjectHandlerTestSuite) TestDeleteProject_LeavesTasksInPlace() {
	project := suite.createTestProject("Doomed")
	task := models.Task{Title: "survivor", ProjectID: project.ID, Status: models.TaskStatusTodo}
	suite.Require().NoError(suite.db.Create(&task).Error)

	w := suite.request("DELETE", "/api/projects/1", nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var count int64
	suite.db.Model(&models.Task{}).Where("project_id = ?", project.ID).Count(&count)
	assert.Equal(suite.T(), int64(1), count)
}

func (suite *ProjectHandlerTestSuite) TestDeleteProject_NotFound() {
	w := suite.request("DELETE", "/api/projects/999", nil)
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func TestProjectHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectHandlerTestSuite))
}
