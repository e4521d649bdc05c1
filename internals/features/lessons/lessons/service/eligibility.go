// file: internals/features/lessons/lessons/service/eligibility.go
package service

import (
	groupModel "tahfizhku_backend/internals/features/lessons/groups/model"
	userModel "tahfizhku_backend/internals/features/users/user/model"
	userService "tahfizhku_backend/internals/features/users/user/service"
)

// CreditPoolForGroupType memetakan tipe grup ke pool kredit yang dipotong.
// Kebijakan: strictly match tipe grup (grup private memotong private_credits,
// grup public memotong public_credits) — tidak ada fallback lintas pool.
func CreditPoolForGroupType(groupType string) (userService.CreditPool, bool) {
	switch groupType {
	case groupModel.GroupTypePrivate:
		return userService.CreditPoolPrivate, true
	case groupModel.GroupTypePublic:
		return userService.CreditPoolPublic, true
	}
	return "", false
}

// HasCreditFor: saldo pool yang relevan > 0
func HasCreditFor(u *userModel.UserModel, pool userService.CreditPool) bool {
	switch pool {
	case userService.CreditPoolPrivate:
		return u.PrivateCredits > 0
	case userService.CreditPoolPublic:
		return u.PublicCredits > 0
	}
	return false
}

// EligibleMembers menyaring anggota grup yang saldo pool relevannya > 0.
// Anggota saldo nol dilewati total: tidak dipotong, tidak dibuatkan report.
func EligibleMembers(members []userModel.UserModel, pool userService.CreditPool) []userModel.UserModel {
	out := make([]userModel.UserModel, 0, len(members))
	for i := range members {
		if HasCreditFor(&members[i], pool) {
			out = append(out, members[i])
		}
	}
	return out
}
