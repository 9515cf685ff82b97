// Package cli is presentation glue: it renders menus, collects raw input
// and calls the ledger engine. No business rules live here.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/JohnMutemi/revised-banking-cli/internal/services"
)

type Menu struct {
	engine *services.ATMService
	in     *bufio.Scanner
	out    io.Writer
}

func New(engine *services.ATMService, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		engine: engine,
		in:     bufio.NewScanner(in),
		out:    out,
	}
}

// Run drives the interactive session until the user selects Exit or input
// ends.
func (m *Menu) Run() {
	for {
		fmt.Fprintln(m.out, "\n--- Bank ATM ---")
		fmt.Fprintln(m.out, "1. Create Account")
		fmt.Fprintln(m.out, "2. Login")
		fmt.Fprintln(m.out, "3. Exit")

		choice, ok := m.prompt("Choose an option: ")
		if !ok {
			return
		}
		switch choice {
		case "1":
			m.createAccount()
		case "2":
			if accountID, ok := m.login(); ok {
				m.session(accountID)
			}
		case "3":
			return
		default:
			fmt.Fprintln(m.out, "Invalid choice. Please try again.")
		}
	}
}

func (m *Menu) session(accountID int64) {
	for {
		fmt.Fprintln(m.out, "\n--- User Menu ---")
		fmt.Fprintln(m.out, "1. Deposit")
		fmt.Fprintln(m.out, "2. Withdraw")
		fmt.Fprintln(m.out, "3. View Balance")
		fmt.Fprintln(m.out, "4. View Transactions")
		fmt.Fprintln(m.out, "5. Pay Bill")
		fmt.Fprintln(m.out, "6. Delete Account")
		fmt.Fprintln(m.out, "7. Logout")

		choice, ok := m.prompt("Choose an option: ")
		if !ok {
			return
		}
		switch choice {
		case "1":
			m.deposit(accountID)
		case "2":
			m.withdraw(accountID)
		case "3":
			m.viewBalance(accountID)
		case "4":
			m.viewTransactions(accountID)
		case "5":
			m.payBill(accountID)
		case "6":
			if m.deleteAccount(accountID) {
				return
			}
		case "7":
			return
		default:
			fmt.Fprintln(m.out, "Invalid choice. Please try again.")
		}
	}
}

func (m *Menu) createAccount() {
	username, ok := m.prompt("Enter a new username: ")
	if !ok {
		return
	}
	pin, ok := m.prompt("Enter a new 4-digit pin: ")
	if !ok {
		return
	}
	if _, err := m.engine.CreateAccount(username, pin); err != nil {
		fmt.Fprintf(m.out, "Could not create account: %v\n", err)
		return
	}
	fmt.Fprintf(m.out, "Welcome %s! You can now log in.\n", username)
}

func (m *Menu) login() (int64, bool) {
	username, ok := m.prompt("Enter your username: ")
	if !ok {
		return 0, false
	}
	pin, ok := m.prompt("Enter your pin: ")
	if !ok {
		return 0, false
	}
	accountID, err := m.engine.Login(username, pin)
	if err != nil {
		fmt.Fprintf(m.out, "Login failed: %v\n", err)
		return 0, false
	}
	return accountID, true
}

func (m *Menu) deposit(accountID int64) {
	amount, ok := m.promptAmount("Enter amount to deposit: ")
	if !ok {
		return
	}
	balance, err := m.engine.Deposit(accountID, amount)
	if err != nil {
		fmt.Fprintf(m.out, "Deposit failed: %v\n", err)
		return
	}
	fmt.Fprintf(m.out, "Deposited %s. New balance is %s.\n", amount, balance)
}

func (m *Menu) withdraw(accountID int64) {
	amount, ok := m.promptAmount("Enter amount to withdraw: ")
	if !ok {
		return
	}
	balance, err := m.engine.Withdraw(accountID, amount)
	if err != nil {
		fmt.Fprintf(m.out, "Withdrawal failed: %v\n", err)
		return
	}
	fmt.Fprintf(m.out, "Withdrew %s. New balance is %s.\n", amount, balance)
}

func (m *Menu) payBill(accountID int64) {
	billType, ok := m.prompt("Enter bill type (fees, rent, vacation): ")
	if !ok {
		return
	}
	amount, ok := m.promptAmount(fmt.Sprintf("Enter amount to pay for %s bill: ", billType))
	if !ok {
		return
	}
	balance, err := m.engine.PayBill(accountID, billType, amount)
	if err != nil {
		fmt.Fprintf(m.out, "Bill payment failed: %v\n", err)
		return
	}
	fmt.Fprintf(m.out, "Paid %s for %s bill. New balance is %s.\n", amount, billType, balance)
}

func (m *Menu) viewBalance(accountID int64) {
	balance, err := m.engine.ViewBalance(accountID)
	if err != nil {
		fmt.Fprintf(m.out, "Could not read balance: %v\n", err)
		return
	}
	fmt.Fprintf(m.out, "Current balance: %s\n", balance)
}

func (m *Menu) viewTransactions(accountID int64) {
	details, err := m.engine.ViewTransactions(accountID)
	if err != nil {
		fmt.Fprintf(m.out, "Could not read transactions: %v\n", err)
		return
	}
	if len(details) == 0 {
		fmt.Fprintln(m.out, "No transactions yet.")
		return
	}
	for _, d := range details {
		fmt.Fprintf(m.out, "%s  %-12s %10s  %s\n",
			d.CreatedAt.Format("2006-01-02 15:04:05"), d.Category, d.Amount, d.Type)
	}
}

func (m *Menu) deleteAccount(accountID int64) bool {
	confirm, ok := m.prompt("Delete this account and its history? (yes/no): ")
	if !ok || !strings.EqualFold(confirm, "yes") {
		return false
	}
	if err := m.engine.DeleteAccount(accountID); err != nil {
		fmt.Fprintf(m.out, "Could not delete account: %v\n", err)
		return false
	}
	fmt.Fprintln(m.out, "Account deleted successfully.")
	return true
}

func (m *Menu) prompt(label string) (string, bool) {
	fmt.Fprint(m.out, label)
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

func (m *Menu) promptAmount(label string) (decimal.Decimal, bool) {
	raw, ok := m.prompt(label)
	if !ok {
		return decimal.Zero, false
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		fmt.Fprintln(m.out, "Invalid amount. Please try again.")
		return decimal.Zero, false
	}
	return amount, true
}
