package grpcapi

// Enum values follow the usual convention of reserving zero for the
// unspecified case, so a request that omits the field is distinguishable
// from one that picked the first value.

type ProjectStatus int32

const (
	ProjectStatusUnspecified ProjectStatus = 0
	ProjectStatusActive      ProjectStatus = 1
	ProjectStatusArchived    ProjectStatus = 2
	ProjectStatusSuspended   ProjectStatus = 3
)

type LifecycleStage int32

const (
	LifecycleStageUnspecified LifecycleStage = 0
	LifecycleStageDevelopment LifecycleStage = 1
	LifecycleStageTesting     LifecycleStage = 2
	LifecycleStageStaging     LifecycleStage = 3
	LifecycleStageProduction  LifecycleStage = 4
)

type ReleaseStatus int32

const (
	ReleaseStatusUnspecified ReleaseStatus = 0
	ReleaseStatusDraft       ReleaseStatus = 1
	ReleaseStatusCreated     ReleaseStatus = 2
	ReleaseStatusDelivering  ReleaseStatus = 3
	ReleaseStatusDelivered   ReleaseStatus = 4
	ReleaseStatusFailed      ReleaseStatus = 5
)

type Project struct {
	Id              string           `json:"id"`
	Name            string           `json:"name"`
	Slug            string           `json:"slug"`
	Description     string           `json:"description,omitempty"`
	ImageUrl        string           `json:"imageUrl,omitempty"`
	Emoji           string           `json:"emoji,omitempty"`
	Status          ProjectStatus    `json:"status"`
	OwnerId         string           `json:"ownerId,omitempty"`
	LifecycleStages []LifecycleStage `json:"lifecycleStages"`
	TagIds          []string         `json:"tagIds"`
	CreatedAt       string           `json:"createdAt"`
	UpdatedAt       string           `json:"updatedAt"`
}

type Release struct {
	Id         string        `json:"id"`
	ProjectId  string        `json:"projectId"`
	Version    string        `json:"version"`
	SnapshotId string        `json:"snapshotId,omitempty"`
	Status     ReleaseStatus `json:"status"`
	Changelog  string        `json:"changelog,omitempty"`
	Notes      string        `json:"notes,omitempty"`
	CreatedAt  string        `json:"createdAt"`
	UpdatedAt  string        `json:"updatedAt"`
}

type Tag struct {
	Id          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Color       string `json:"color,omitempty"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

type HealthCheckRequest struct {
	Service string `json:"service,omitempty"`
}

type HealthCheckResponse struct {
	Status  string `json:"status"`
	Service string `json:"service,omitempty"`
}

type GetProjectRequest struct {
	Id   string `json:"id,omitempty"`
	Slug string `json:"slug,omitempty"`
}

type ListProjectsRequest struct {
	Page      int32         `json:"page,omitempty"`
	PageSize  int32         `json:"pageSize,omitempty"`
	Search    string        `json:"search,omitempty"`
	Status    ProjectStatus `json:"status,omitempty"`
	OwnerId   string        `json:"ownerId,omitempty"`
	TagIds    []string      `json:"tagIds,omitempty"`
	SortBy    string        `json:"sortBy,omitempty"`
	SortOrder string        `json:"sortOrder,omitempty"`
}

type ListProjectsResponse struct {
	Items    []*Project `json:"items"`
	Total    int32      `json:"total"`
	Page     int32      `json:"page"`
	PageSize int32      `json:"pageSize"`
}

type CreateProjectRequest struct {
	Name            string                 `json:"name"`
	Slug            string                 `json:"slug"`
	Description     *string                `json:"description,omitempty"`
	Emoji           *string                `json:"emoji,omitempty"`
	Status          ProjectStatus          `json:"status,omitempty"`
	OwnerId         string                 `json:"ownerId,omitempty"`
	LifecycleStages []LifecycleStage       `json:"lifecycleStages,omitempty"`
	TagIds          []string               `json:"tagIds,omitempty"`
	Metadata        map[string]interface{} `json:"metadata,omitempty"`
}

type UpdateProjectRequest struct {
	Id              string                  `json:"id"`
	Name            *string                 `json:"name,omitempty"`
	Slug            *string                 `json:"slug,omitempty"`
	Description     *string                 `json:"description,omitempty"`
	Emoji           *string                 `json:"emoji,omitempty"`
	Status          ProjectStatus           `json:"status,omitempty"`
	OwnerId         *string                 `json:"ownerId,omitempty"`
	LifecycleStages *[]LifecycleStage       `json:"lifecycleStages,omitempty"`
	TagIds          *[]string               `json:"tagIds,omitempty"`
	Metadata        *map[string]interface{} `json:"metadata,omitempty"`
}

type DeleteProjectRequest struct {
	Id string `json:"id"`
}

type DeleteProjectResponse struct{}

type ProjectExistsRequest struct {
	Id string `json:"id"`
}

type ProjectExistsResponse struct {
	Exists bool `json:"exists"`
}

type GetReleaseRequest struct {
	Id        string `json:"id"`
	ProjectId string `json:"projectId,omitempty"`
}

type ListReleasesRequest struct {
	ProjectId string        `json:"projectId"`
	Page      int32         `json:"page,omitempty"`
	PageSize  int32         `json:"pageSize,omitempty"`
	Status    ReleaseStatus `json:"status,omitempty"`
	Version   string        `json:"version,omitempty"`
}

type ListReleasesResponse struct {
	Items    []*Release `json:"items"`
	Total    int32      `json:"total"`
	Page     int32      `json:"page"`
	PageSize int32      `json:"pageSize"`
}

type CreateReleaseRequest struct {
	ProjectId string                 `json:"projectId"`
	Version   string                 `json:"version"`
	Changelog *string                `json:"changelog,omitempty"`
	Notes     *string                `json:"notes,omitempty"`
	Structure map[string]interface{} `json:"structure,omitempty"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
}

type UpdateReleaseRequest struct {
	Id         string  `json:"id"`
	SnapshotId *string `json:"snapshotId,omitempty"`
	Changelog  *string `json:"changelog,omitempty"`
	Notes      *string `json:"notes,omitempty"`
}

type UpdateReleaseStructureRequest struct {
	Id         string                 `json:"id"`
	SnapshotId string                 `json:"snapshotId"`
	Structure  map[string]interface{} `json:"structure"`
}

type UpdateReleaseStatusRequest struct {
	Id     string        `json:"id"`
	Status ReleaseStatus `json:"status"`
}

type DeleteReleaseRequest struct {
	Id        string `json:"id"`
	ProjectId string `json:"projectId,omitempty"`
}

type DeleteReleaseResponse struct{}

type GetReleaseStructureRequest struct {
	Id string `json:"id"`
}

type ReleaseProcess struct {
	Id     string            `json:"id"`
	Name   string            `json:"name"`
	Config map[string]string `json:"config"`
}

type ReleaseAsset struct {
	Id       string            `json:"id"`
	Name     string            `json:"name"`
	Url      string            `json:"url"`
	Metadata map[string]string `json:"metadata"`
}

type ReleaseStructureConfig struct {
	Processes []*ReleaseProcess `json:"processes"`
	Variables map[string]string `json:"variables"`
	Assets    []*ReleaseAsset   `json:"assets"`
}

type GetReleaseStructureResponse struct {
	ProjectId   string                  `json:"projectId"`
	ProjectName string                  `json:"projectName"`
	Version     string                  `json:"version"`
	SnapshotId  string                  `json:"snapshotId"`
	Config      *ReleaseStructureConfig `json:"config"`
	Metadata    map[string]string       `json:"metadata"`
}

type GetTagRequest struct {
	Id string `json:"id"`
}

type ListTagsRequest struct {
	Page     int32  `json:"page,omitempty"`
	PageSize int32  `json:"pageSize,omitempty"`
	Search   string `json:"search,omitempty"`
}

type ListTagsResponse struct {
	Items    []*Tag `json:"items"`
	Total    int32  `json:"total"`
	Page     int32  `json:"page"`
	PageSize int32  `json:"pageSize"`
}

type CreateTagRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Color       *string `json:"color,omitempty"`
}

type UpdateTagRequest struct {
	Id          string  `json:"id"`
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Color       *string `json:"color,omitempty"`
}

type DeleteTagRequest struct {
	Id string `json:"id"`
}

type DeleteTagResponse struct{}
