package nexus

type Code struct {
	Code        string `json:"code"`
	IsPrimary   bool   `json:"isPrimary"`
	IsGenerated bool   `json:"isGenerated"`
	IsManaged   bool   `json:"isManaged"`
}

type Member struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	PlayerID     string `json:"playerId"`
	GroupID      string `json:"groupId"`
	GroupName    string `json:"groupName"`
	LogoImage    string `json:"logoImage"`
	ProfileImage string `json:"profileImage"`
	Codes        []Code `json:"codes"`
}

// Page is the envelope shared by list responses.
type Page struct {
	GroupID         string `json:"groupId"`
	GroupName       string `json:"groupName"`
	CurrentPage     int    `json:"currentPage"`
	CurrentPageSize int    `json:"currentPageSize"`
	TotalCount      int    `json:"totalCount"`
}

type AllMembersResponse struct {
	Page
	Members []Member `json:"members"`
}

type PlayerMetadata struct {
	DisplayName string `json:"displayName"`
}

type GenerateCodeRequest struct {
	PlayerMetadata *PlayerMetadata `json:"playerMetadata,omitempty"`
	PlayerID       string          `json:"playerId"`
}

type GenerateCodeResponse struct {
	PlayerMetadata *PlayerMetadata `json:"playerMetadata,omitempty"`
	GroupID        string          `json:"groupId"`
	GroupName      string          `json:"groupName"`
	PlayerID       string          `json:"playerId"`
	Code           string          `json:"code"`
}

type LinkExistingNexusRequest struct {
	PlayerMetadata *PlayerMetadata `json:"playerMetadata,omitempty"`
	PlayerID       string          `json:"playerId"`
	AuthCode       string          `json:"authCode"`
}

type LinkExistingNexusResponse struct {
	GroupID   string `json:"groupId"`
	GroupName string `json:"groupName"`
	ID        string `json:"id"`
	PlayerID  string `json:"playerId"`
	Codes     []Code `json:"codes"`
}

type AuthCodeResponse struct {
	AuthCode  string `json:"authCode"`
	ExpiresAt string `json:"expiresAt"`
}

type GroupTier struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	RevShare    float64 `json:"revShare"`
	MemberCount int     `json:"memberCount"`
}

type GroupTiersResponse struct {
	Page
	GroupTiers []GroupTier `json:"groupTiers"`
}

type TierMember struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	PlayerID     string `json:"playerId"`
	LogoImage    string `json:"logoImage"`
	ProfileImage string `json:"profileImage"`
	Codes        []Code `json:"codes"`
}

type TierDetailsResponse struct {
	Page
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	RevShare float64      `json:"revShare"`
	Members  []TierMember `json:"members"`
}

type TierRevenueShare struct {
	TierID   string  `json:"tierId"`
	TierName string  `json:"tierName,omitempty"`
	RevShare float64 `json:"revShare"`
}

type ScheduleRevShareRequest struct {
	RevShare          *float64           `json:"revShare,omitempty"`
	StartDate         string             `json:"startDate"`
	EndDate           string             `json:"endDate"`
	TierRevenueShares []TierRevenueShare `json:"tierRevenueShares,omitempty"`
}

type ScheduleRevShareResponse struct {
	ID                string             `json:"id"`
	RevShare          float64            `json:"revShare"`
	StartDate         string             `json:"startDate"`
	EndDate           string             `json:"endDate"`
	GroupID           string             `json:"groupId"`
	GroupName         string             `json:"groupName"`
	TierRevenueShares []TierRevenueShare `json:"tierRevenueShares"`
}

type ScheduledRevShare struct {
	ID                string             `json:"id"`
	RevShare          float64            `json:"revShare"`
	StartDate         string             `json:"startDate"`
	EndDate           string             `json:"endDate"`
	Status            string             `json:"status"`
	TierRevenueShares []TierRevenueShare `json:"tierRevenueShares"`
}

type ListScheduledRevSharesResponse struct {
	Page
	ScheduledRevShares []ScheduledRevShare `json:"scheduledRevShares"`
}
