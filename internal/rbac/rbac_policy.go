package rbac

import (
	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

const (
	RoleViewer  = "viewer"
	RoleHRStaff = "hr_staff"
	RoleHRAdmin = "hr_admin"
)

// modelText grants a role its own permissions and those of every role it
// inherits through g.
const modelText = `[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.obj == p.obj && r.act == p.act
`

// defaultPolicies: viewers read everything, HR staff maintain absences
// and employees, HR admins also own departments, approvals and deletes.
var defaultPolicies = [][]string{
	{RoleViewer, "department", "read"},
	{RoleViewer, "employee", "read"},
	{RoleViewer, "absence", "read"},

	{RoleHRStaff, "history", "read"},
	{RoleHRStaff, "employee", "create"},
	{RoleHRStaff, "employee", "update"},
	{RoleHRStaff, "absence", "create"},
	{RoleHRStaff, "absence", "update"},

	{RoleHRAdmin, "department", "create"},
	{RoleHRAdmin, "department", "update"},
	{RoleHRAdmin, "department", "delete"},
	{RoleHRAdmin, "employee", "delete"},
	{RoleHRAdmin, "absence", "approve"},
	{RoleHRAdmin, "absence", "delete"},
}

var defaultGroupings = [][]string{
	{RoleHRStaff, RoleViewer},
	{RoleHRAdmin, RoleHRStaff},
}

// NewEnforcer builds an in-memory enforcer loaded with the built-in
// roles.
func NewEnforcer() (*casbin.Enforcer, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, err
	}

	e, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}

	if _, err := e.AddPolicies(defaultPolicies); err != nil {
		return nil, err
	}
	if _, err := e.AddGroupingPolicies(defaultGroupings); err != nil {
		return nil, err
	}
	return e, nil
}
