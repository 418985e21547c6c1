// Package subscription implements the newsletter subscription intake.
//
// A request moves through three strictly sequential steps: parse the form
// into a domain.NewSubscriber, insert a pending_confirmation record, then
// send the confirmation email. Persist and notify are not one transaction;
// a record whose email failed stays pending with no compensating action.
//
// The service depends on the Repository and Notifier interfaces defined in
// this package. Implementations live in repository/postgres,
// repository/memory, and ConfirmationNotifier below.
package subscription
