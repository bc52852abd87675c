// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing message catalogue of the money-tracker
// command-line client.
//
// All Msg* constants are human-readable strings printed to the terminal to
// describe the outcome of a command. Keeping them in one place ensures
// consistent wording across commands.
package app

const (
	// MsgRegistered is printed after an account was created and its token
	// saved.
	MsgRegistered = "registered and logged in as %s"

	// MsgLoggedIn is printed after a successful login.
	MsgLoggedIn = "logged in as %s"

	// MsgLoggedOut is printed after the stored token was removed.
	MsgLoggedOut = "logged out"

	// MsgTokenCopied is printed when the issued token was copied to the
	// system clipboard.
	MsgTokenCopied = "token copied to clipboard"

	// MsgExpenseCreated is printed with the id of a newly stored expense.
	MsgExpenseCreated = "expense %s created"

	// MsgExpenseUpdated is printed after an expense was updated.
	MsgExpenseUpdated = "expense %s updated"

	// MsgExpenseDeleted is printed after an expense was deleted.
	MsgExpenseDeleted = "expense %s deleted"

	// MsgNoExpenses is printed by list when the user has no expenses.
	MsgNoExpenses = "no expenses yet"

	// MsgNothingToUpdate is returned when update is called without any
	// field flag.
	MsgNothingToUpdate = "nothing to update: pass at least one of -description, -amount, -date, -category"

	// MsgNotLoggedIn is shown when a command needs a token and none is
	// stored.
	MsgNotLoggedIn = "not logged in: run `login` or `register` first"

	// MsgSessionExpired is shown when the server rejected the stored token.
	MsgSessionExpired = "session expired or invalid: run `login` again"

	// MsgInvalidCredentials is shown when login was rejected.
	MsgInvalidCredentials = "invalid email or password"

	// MsgEmailTaken is shown when registration hits an existing account.
	MsgEmailTaken = "an account with this email already exists"

	// MsgExpenseNotFound is shown for unknown expense ids.
	MsgExpenseNotFound = "expense not found"

	// MsgServerUnavailable is shown for 5xx responses.
	MsgServerUnavailable = "server is unavailable, try again later"

	// MsgPasswordPrompt is the prompt used when -password is not given.
	MsgPasswordPrompt = "Password: "
)
