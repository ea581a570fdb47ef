package commands

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/shahzadali/clothshop/internal/domain/models"
	"github.com/shahzadali/clothshop/pkg/clients/backend"
)

// ErrInvalidArguments indicates the command payload could not be parsed.
var ErrInvalidArguments = errors.New("invalid command arguments")

// ErrUnsupportedCommand indicates we do not yet support the requested command.
var ErrUnsupportedCommand = errors.New("unsupported command")

// BackendGateway is the slice of the API client the dispatcher calls for
// record listing and CRUD.
type BackendGateway interface {
	ListVarieties(ctx context.Context) ([]models.Variety, error)
	CreateVariety(ctx context.Context, req backend.VarietyCreateRequest) (models.Variety, error)
	UpdateVariety(ctx context.Context, id int, req backend.VarietyCreateRequest) (models.Variety, error)
	DeleteVariety(ctx context.Context, id int) error

	SalesByDate(ctx context.Context, date string) ([]models.Sale, error)
	CreateSale(ctx context.Context, req backend.SaleCreateRequest) (models.Sale, error)
	DeleteSale(ctx context.Context, id int) error

	SuppliesByDate(ctx context.Context, date string) ([]models.Supply, error)
	CreateSupply(ctx context.Context, req backend.SupplyCreateRequest) (models.Supply, error)
	DeleteSupply(ctx context.Context, id int) error

	ReturnsByDate(ctx context.Context, date string) ([]models.Return, error)
	CreateReturn(ctx context.Context, req backend.ReturnCreateRequest) (models.Return, error)
	DeleteReturn(ctx context.Context, id int) error

	SalesDailySummary(ctx context.Context, date string) (models.DailySalesSummary, error)
	SupplierDailySummary(ctx context.Context, date string) (models.DailySupplierSummary, error)

	ExpensesByDate(ctx context.Context, date string) ([]models.Expense, error)
	ExpensesByMonth(ctx context.Context, year, month int) ([]models.Expense, error)
	CreateExpense(ctx context.Context, req backend.ExpenseCreateRequest) (models.Expense, error)
	DeleteExpense(ctx context.Context, id int) error

	Chat(ctx context.Context, message string, history []models.ChatMessage) (models.ChatReply, error)
}

// ReportingAdapter defines the formatted reports required by the dispatcher.
type ReportingAdapter interface {
	DailyOverview(ctx context.Context, date string) (string, error)
	AnalyticsOverview(ctx context.Context, days int) (string, error)
	RangeReport(ctx context.Context, start, end time.Time) (string, error)
	ProfitBreakdown(ctx context.Context, date string) (string, error)
	SalespersonReport(ctx context.Context, name, date string) (string, error)
	SupplierWise(ctx context.Context, date string) (string, error)
	ExpenseOverview(ctx context.Context, date string) (string, error)
	Financial(ctx context.Context, year, month int) (string, error)
	Stats(ctx context.Context) (string, error)
}

// ChatSession carries the assistant conversation across commands.
type ChatSession interface {
	History() []models.ChatMessage
	Append(role, content string)
}

// Service executes parsed console commands and returns the rendered reply.
type Service struct {
	gateway   BackendGateway
	reporting ReportingAdapter
	session   ChatSession
	logger    *zap.Logger
	now       func() time.Time
}

// NewService constructs a command dispatcher.
func NewService(gateway BackendGateway, reporting ReportingAdapter, session ChatSession, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		gateway:   gateway,
		reporting: reporting,
		session:   session,
		logger:    logger.Named("svc.commands"),
		now:       time.Now,
	}
}

// HandleCommand routes one parsed command to the matching service call.
func (s *Service) HandleCommand(ctx context.Context, cmd models.Command) (string, error) {
	s.logger.Debug("dispatching command", zap.String("command", string(cmd.Type)), zap.Any("args", cmd.Args))

	switch cmd.Type {
	case models.CommandDashboard:
		return s.reporting.DailyOverview(ctx, s.dateArg(cmd.Args, 0))
	case models.CommandAnalytics:
		return s.handleAnalytics(ctx, cmd)
	case models.CommandReport:
		return s.handleReport(ctx, cmd)
	case models.CommandSales:
		return s.handleSales(ctx, cmd)
	case models.CommandSupply:
		return s.handleSupply(ctx, cmd)
	case models.CommandReturns:
		return s.handleReturns(ctx, cmd)
	case models.CommandVarieties:
		return s.handleVarieties(ctx, cmd)
	case models.CommandExpenses:
		return s.handleExpenses(ctx, cmd)
	case models.CommandSalesperson:
		return s.handleSalesperson(ctx, cmd)
	case models.CommandSuppliers:
		return s.handleSuppliers(ctx, cmd)
	case models.CommandStats:
		return s.reporting.Stats(ctx)
	case models.CommandChat:
		return s.handleChat(ctx, cmd)
	case models.CommandHelp:
		return helpText, nil
	default:
		return "", ErrUnsupportedCommand
	}
}

func (s *Service) handleAnalytics(ctx context.Context, cmd models.Command) (string, error) {
	days := 30
	if len(cmd.Args) > 0 {
		n, err := strconv.Atoi(cmd.Args[0])
		if err != nil || n <= 0 {
			return "", ErrInvalidArguments
		}
		days = n
	}
	return s.reporting.AnalyticsOverview(ctx, days)
}

func (s *Service) handleReport(ctx context.Context, cmd models.Command) (string, error) {
	if len(cmd.Args) > 0 && strings.EqualFold(cmd.Args[0], "profit") {
		return s.reporting.ProfitBreakdown(ctx, s.dateArg(cmd.Args, 1))
	}

	if len(cmd.Args) < 2 {
		return "", ErrInvalidArguments
	}
	start, ok := models.ParseDay(cmd.Args[0])
	if !ok {
		return "", ErrInvalidArguments
	}
	end, ok := models.ParseDay(cmd.Args[1])
	if !ok {
		return "", ErrInvalidArguments
	}
	return s.reporting.RangeReport(ctx, start, end)
}

func (s *Service) handleSales(ctx context.Context, cmd models.Command) (string, error) {
	switch sub(cmd.Args) {
	case "add":
		req, err := s.buildSaleRequest(cmd.Args[1:])
		if err != nil {
			return "", err
		}
		sale, err := s.gateway.CreateSale(ctx, req)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Sale #%d recorded: %s sold %s units on %s.",
			sale.ID, sale.SalespersonName, sale.Quantity.String(), sale.SaleDate.Format(models.DayLayout)), nil
	case "del":
		id, err := idArg(cmd.Args)
		if err != nil {
			return "", err
		}
		if err := s.gateway.DeleteSale(ctx, id); err != nil {
			return "", err
		}
		return fmt.Sprintf("Sale #%d deleted.", id), nil
	case "summary":
		date := s.dateArg(cmd.Args, 1)
		summary, err := s.gateway.SalesDailySummary(ctx, date)
		if err != nil {
			return "", err
		}
		return renderSalesSummary(summary), nil
	default:
		date := s.dateArg(cmd.Args, 0)
		sales, err := s.gateway.SalesByDate(ctx, date)
		if err != nil {
			return "", err
		}
		return renderSales(date, sales), nil
	}
}

func (s *Service) handleSupply(ctx context.Context, cmd models.Command) (string, error) {
	switch sub(cmd.Args) {
	case "add":
		req, err := s.buildSupplyRequest(cmd.Args[1:])
		if err != nil {
			return "", err
		}
		supply, err := s.gateway.CreateSupply(ctx, req)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Supply #%d recorded from %s for %s.",
			supply.ID, supply.SupplierName, supply.SupplyDate.Format(models.DayLayout)), nil
	case "del":
		id, err := idArg(cmd.Args)
		if err != nil {
			return "", err
		}
		if err := s.gateway.DeleteSupply(ctx, id); err != nil {
			return "", err
		}
		return fmt.Sprintf("Supply #%d deleted.", id), nil
	default:
		date := s.dateArg(cmd.Args, 0)
		supplies, err := s.gateway.SuppliesByDate(ctx, date)
		if err != nil {
			return "", err
		}
		return renderSupplies(date, supplies), nil
	}
}

func (s *Service) handleReturns(ctx context.Context, cmd models.Command) (string, error) {
	switch sub(cmd.Args) {
	case "add":
		req, err := s.buildReturnRequest(cmd.Args[1:])
		if err != nil {
			return "", err
		}
		ret, err := s.gateway.CreateReturn(ctx, req)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Return #%d recorded to %s for %s.",
			ret.ID, ret.SupplierName, ret.ReturnDate.Format(models.DayLayout)), nil
	case "del":
		id, err := idArg(cmd.Args)
		if err != nil {
			return "", err
		}
		if err := s.gateway.DeleteReturn(ctx, id); err != nil {
			return "", err
		}
		return fmt.Sprintf("Return #%d deleted.", id), nil
	default:
		date := s.dateArg(cmd.Args, 0)
		returns, err := s.gateway.ReturnsByDate(ctx, date)
		if err != nil {
			return "", err
		}
		return renderReturns(date, returns), nil
	}
}

func (s *Service) handleVarieties(ctx context.Context, cmd models.Command) (string, error) {
	switch sub(cmd.Args) {
	case "add":
		req, err := buildVarietyRequest(cmd.Args[1:])
		if err != nil {
			return "", err
		}
		v, err := s.gateway.CreateVariety(ctx, req)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Variety #%d %q added (%s).", v.ID, v.Name, v.MeasurementUnit), nil
	case "edit":
		if len(cmd.Args) < 2 {
			return "", ErrInvalidArguments
		}
		id, err := strconv.Atoi(cmd.Args[1])
		if err != nil {
			return "", ErrInvalidArguments
		}
		req, err := buildVarietyRequest(cmd.Args[2:])
		if err != nil {
			return "", err
		}
		v, err := s.gateway.UpdateVariety(ctx, id, req)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Variety #%d updated to %q (%s).", v.ID, v.Name, v.MeasurementUnit), nil
	case "del":
		id, err := idArg(cmd.Args)
		if err != nil {
			return "", err
		}
		if err := s.gateway.DeleteVariety(ctx, id); err != nil {
			return "", err
		}
		return fmt.Sprintf("Variety #%d deleted.", id), nil
	default:
		varieties, err := s.gateway.ListVarieties(ctx)
		if err != nil {
			return "", err
		}
		return renderVarieties(varieties), nil
	}
}

func (s *Service) handleExpenses(ctx context.Context, cmd models.Command) (string, error) {
	switch sub(cmd.Args) {
	case "add":
		req, err := s.buildExpenseRequest(cmd.Args[1:])
		if err != nil {
			return "", err
		}
		e, err := s.gateway.CreateExpense(ctx, req)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Expense #%d logged: %s %s on %s.",
			e.ID, e.Category, e.Amount.StringFixed(2), e.ExpenseDate.Format(models.DayLayout)), nil
	case "del":
		id, err := idArg(cmd.Args)
		if err != nil {
			return "", err
		}
		if err := s.gateway.DeleteExpense(ctx, id); err != nil {
			return "", err
		}
		return fmt.Sprintf("Expense #%d deleted.", id), nil
	case "month":
		year, month, err := yearMonthArgs(cmd.Args[1:])
		if err != nil {
			return "", err
		}
		expenses, err := s.gateway.ExpensesByMonth(ctx, year, month)
		if err != nil {
			return "", err
		}
		return renderExpenses(fmt.Sprintf("%d-%02d", year, month), expenses), nil
	case "report":
		year, month, err := yearMonthArgs(cmd.Args[1:])
		if err != nil {
			return "", err
		}
		return s.reporting.Financial(ctx, year, month)
	case "summary":
		return s.reporting.ExpenseOverview(ctx, s.dateArg(cmd.Args, 1))
	default:
		date := s.dateArg(cmd.Args, 0)
		expenses, err := s.gateway.ExpensesByDate(ctx, date)
		if err != nil {
			return "", err
		}
		return renderExpenses(date, expenses), nil
	}
}

func (s *Service) handleSuppliers(ctx context.Context, cmd models.Command) (string, error) {
	if sub(cmd.Args) == "summary" {
		date := s.dateArg(cmd.Args, 1)
		summary, err := s.gateway.SupplierDailySummary(ctx, date)
		if err != nil {
			return "", err
		}
		return renderSupplierSummary(summary), nil
	}
	return s.reporting.SupplierWise(ctx, s.dateArg(cmd.Args, 0))
}

func (s *Service) handleSalesperson(ctx context.Context, cmd models.Command) (string, error) {
	if len(cmd.Args) == 0 {
		return "", ErrInvalidArguments
	}
	return s.reporting.SalespersonReport(ctx, cmd.Args[0], s.dateArg(cmd.Args, 1))
}

func (s *Service) handleChat(ctx context.Context, cmd models.Command) (string, error) {
	if len(cmd.Args) == 0 {
		return "", ErrInvalidArguments
	}
	message := strings.Join(cmd.Args, " ")

	var history []models.ChatMessage
	if s.session != nil {
		history = s.session.History()
	}

	reply, err := s.gateway.Chat(ctx, message, history)
	if err != nil {
		return "", err
	}

	if s.session != nil {
		s.session.Append("user", message)
		s.session.Append("assistant", reply.Response)
	}
	return reply.Response, nil
}

// dateArg returns the positional date argument, defaulting to today. A date
// that fails to parse falls back to today as well; list endpoints reject bad
// dates server-side anyway.
func (s *Service) dateArg(args []string, pos int) string {
	if len(args) > pos {
		if _, ok := models.ParseDay(args[pos]); ok {
			return args[pos]
		}
	}
	return s.now().Format(models.DayLayout)
}

func sub(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return strings.ToLower(args[0])
}

func idArg(args []string) (int, error) {
	if len(args) < 2 {
		return 0, ErrInvalidArguments
	}
	id, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, ErrInvalidArguments
	}
	return id, nil
}

func yearMonthArgs(args []string) (int, int, error) {
	if len(args) < 2 {
		return 0, 0, ErrInvalidArguments
	}
	year, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, ErrInvalidArguments
	}
	month, err := strconv.Atoi(args[1])
	if err != nil || month < 1 || month > 12 {
		return 0, 0, ErrInvalidArguments
	}
	return year, month, nil
}

// decimalArg validates a numeric argument and returns its canonical string.
func decimalArg(raw string) (string, error) {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return "", ErrInvalidArguments
	}
	return d.String(), nil
}

// buildSaleRequest parses: <salesperson> <variety_id> <qty> <selling_price> <cost_price> [date]
func (s *Service) buildSaleRequest(args []string) (backend.SaleCreateRequest, error) {
	if len(args) < 5 {
		return backend.SaleCreateRequest{}, ErrInvalidArguments
	}

	varietyID, err := strconv.Atoi(args[1])
	if err != nil {
		return backend.SaleCreateRequest{}, ErrInvalidArguments
	}
	qty, err := decimalArg(args[2])
	if err != nil {
		return backend.SaleCreateRequest{}, err
	}
	selling, err := decimalArg(args[3])
	if err != nil {
		return backend.SaleCreateRequest{}, err
	}
	cost, err := decimalArg(args[4])
	if err != nil {
		return backend.SaleCreateRequest{}, err
	}

	date := s.now().Format(models.DayLayout)
	if len(args) > 5 {
		if _, ok := models.ParseDay(args[5]); !ok {
			return backend.SaleCreateRequest{}, ErrInvalidArguments
		}
		date = args[5]
	}

	return backend.SaleCreateRequest{
		SalespersonName: args[0],
		VarietyID:       varietyID,
		Quantity:        qty,
		SellingPrice:    selling,
		CostPrice:       cost,
		SaleDate:        date,
	}, nil
}

// buildSupplyRequest parses: <supplier> <variety_id> <qty> <price_per_item> [date]
func (s *Service) buildSupplyRequest(args []string) (backend.SupplyCreateRequest, error) {
	if len(args) < 4 {
		return backend.SupplyCreateRequest{}, ErrInvalidArguments
	}

	varietyID, err := strconv.Atoi(args[1])
	if err != nil {
		return backend.SupplyCreateRequest{}, ErrInvalidArguments
	}
	qty, err := decimalArg(args[2])
	if err != nil {
		return backend.SupplyCreateRequest{}, err
	}
	price, err := decimalArg(args[3])
	if err != nil {
		return backend.SupplyCreateRequest{}, err
	}

	date := s.now().Format(models.DayLayout)
	if len(args) > 4 {
		if _, ok := models.ParseDay(args[4]); !ok {
			return backend.SupplyCreateRequest{}, ErrInvalidArguments
		}
		date = args[4]
	}

	return backend.SupplyCreateRequest{
		SupplierName: args[0],
		VarietyID:    varietyID,
		Quantity:     qty,
		PricePerItem: price,
		SupplyDate:   date,
	}, nil
}

// buildReturnRequest parses: <supplier> <variety_id> <qty> <price_per_item> [reason...]
func (s *Service) buildReturnRequest(args []string) (backend.ReturnCreateRequest, error) {
	if len(args) < 4 {
		return backend.ReturnCreateRequest{}, ErrInvalidArguments
	}

	varietyID, err := strconv.Atoi(args[1])
	if err != nil {
		return backend.ReturnCreateRequest{}, ErrInvalidArguments
	}
	qty, err := decimalArg(args[2])
	if err != nil {
		return backend.ReturnCreateRequest{}, err
	}
	price, err := decimalArg(args[3])
	if err != nil {
		return backend.ReturnCreateRequest{}, err
	}

	reason := ""
	if len(args) > 4 {
		reason = strings.Join(args[4:], " ")
	}

	return backend.ReturnCreateRequest{
		SupplierName: args[0],
		VarietyID:    varietyID,
		Quantity:     qty,
		PricePerItem: price,
		ReturnDate:   s.now().Format(models.DayLayout),
		Reason:       reason,
	}, nil
}

// buildVarietyRequest parses: <name> <unit> [standard_length] [description...]
func buildVarietyRequest(args []string) (backend.VarietyCreateRequest, error) {
	if len(args) < 2 {
		return backend.VarietyCreateRequest{}, ErrInvalidArguments
	}

	unit := models.MeasurementUnit(strings.ToLower(args[1]))
	if !unit.Valid() {
		return backend.VarietyCreateRequest{}, ErrInvalidArguments
	}

	req := backend.VarietyCreateRequest{
		Name:            args[0],
		MeasurementUnit: string(unit),
	}

	rest := args[2:]
	if len(rest) > 0 {
		if length, err := decimalArg(rest[0]); err == nil {
			req.StandardLength = length
			rest = rest[1:]
		}
	}
	if len(rest) > 0 {
		req.Description = strings.Join(rest, " ")
	}

	return req, nil
}

// buildExpenseRequest parses: <category> <amount> [date] [description...]
func (s *Service) buildExpenseRequest(args []string) (backend.ExpenseCreateRequest, error) {
	if len(args) < 2 {
		return backend.ExpenseCreateRequest{}, ErrInvalidArguments
	}

	amount, err := decimalArg(args[1])
	if err != nil {
		return backend.ExpenseCreateRequest{}, err
	}

	req := backend.ExpenseCreateRequest{
		Category:    args[0],
		Amount:      amount,
		ExpenseDate: s.now().Format(models.DayLayout),
	}

	rest := args[2:]
	if len(rest) > 0 {
		if _, ok := models.ParseDay(rest[0]); ok {
			req.ExpenseDate = rest[0]
			rest = rest[1:]
		}
	}
	if len(rest) > 0 {
		req.Description = strings.Join(rest, " ")
	}

	return req, nil
}
