package service

// AdminService gates reporting commands behind the single configured
// administrator handle
type AdminService struct {
	adminHandle string
}

// NewAdminService creates a new admin service
func NewAdminService(adminHandle string) *AdminService {
	return &AdminService{adminHandle: adminHandle}
}

// IsAdmin reports whether the handle matches the configured administrator.
// The comparison is exact and case-sensitive; there are no roles and no
// multi-admin list.
func (s *AdminService) IsAdmin(handle string) bool {
	return s.adminHandle != "" && handle == s.adminHandle
}
