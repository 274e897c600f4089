package bot

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"duoprofits/internal/model"
	"duoprofits/internal/repository"
	"duoprofits/internal/service"
)

const (
	cbTypePrefix     = "type_"
	cbPersonPrefix   = "person_"
	cbCategoryPrefix = "category_"
	cbNotifEnable    = "notif_enable"
	cbNotifDisable   = "notif_disable"
)

const (
	msgSessionExpired = "La sesión expiró. Usa /agregar para empezar de nuevo."
	msgSetupMissing   = "⚠️ La base de datos no está inicializada. Ejecuta el script de configuración y vuelve a intentarlo."
	msgGenericError   = "⚠️ Algo salió mal. Intenta de nuevo en un momento."
)

// telegramSender is the slice of the Telegram API the handlers need. Tests
// drive the handlers with a fake in place of the live client.
type telegramSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

type coupleStore interface {
	Household(ctx context.Context) (*model.Couple, error)
}

type subscriptionStore interface {
	Set(ctx context.Context, chatID int64, enabled bool) error
	IsEnabled(ctx context.Context, chatID int64) (bool, error)
	ListEnabled(ctx context.Context) ([]model.ChatSubscription, error)
}

// Bot wires the Telegram API to the household's services.
type Bot struct {
	api       *tgbotapi.BotAPI
	tg        telegramSender
	txSvc     *service.TransactionService
	statsSvc  *service.StatsService
	reportSvc *service.ReportService
	couples   coupleStore
	subs      subscriptionStore
	sessions  *sessionStore
}

func New(token string, txSvc *service.TransactionService, statsSvc *service.StatsService, reportSvc *service.ReportService, couples *repository.CoupleRepository, subs *repository.SubscriptionRepository, sessionTTL time.Duration) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create bot api: %w", err)
	}

	log.Infof("bot authorized on account %s", api.Self.UserName)

	return &Bot{
		api:       api,
		tg:        api,
		txSvc:     txSvc,
		statsSvc:  statsSvc,
		reportSvc: reportSvc,
		couples:   couples,
		subs:      subs,
		sessions:  newSessionStore(sessionTTL),
	}, nil
}

// Start begins polling updates until ctx is cancelled.
func (b *Bot) Start(ctx context.Context) error {
	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 60
	updates := b.api.GetUpdatesChan(updateConfig)

	log.Info("start polling updates")

	go func() {
		<-ctx.Done()
		b.api.StopReceivingUpdates()
	}()

	for update := range updates {
		switch {
		case update.CallbackQuery != nil:
			if err := b.handleCallback(ctx, update.CallbackQuery); err != nil {
				log.Errorf("handle callback: %v", err)
			}
		case update.Message != nil:
			if update.Message.Chat == nil {
				continue
			}
			if err := b.handleMessage(ctx, update.Message); err != nil {
				log.Errorf("handle message: %v", err)
			}
		}
	}

	return nil
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) error {
	if msg.IsCommand() {
		log.Infof("command from chat %d: /%s %s", msg.Chat.ID, msg.Command(), msg.CommandArguments())
		return b.handleCommand(ctx, msg)
	}

	if state, ok := b.sessions.get(msg.Chat.ID); ok {
		return b.handleConversation(ctx, msg, state)
	}

	// Free text outside a dialog is unrelated chatter.
	return nil
}

func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) error {
	switch msg.Command() {
	case "start":
		return b.handleStart(ctx, msg)
	case "ayuda":
		return b.handleHelp(msg)
	case "balance":
		return b.handleBalance(ctx, msg)
	case "balance_personal":
		return b.handlePersonalBalance(ctx, msg)
	case "transacciones":
		return b.handleTransactions(ctx, msg)
	case "agregar":
		return b.startAddConversation(msg)
	case "eliminar":
		return b.handleDeleteHelp(ctx, msg)
	case "eliminar_id":
		return b.handleDeleteByID(ctx, msg)
	case "reporte":
		return b.handleReport(ctx, msg)
	case "buscar":
		return b.handleSearch(ctx, msg)
	case "notificaciones":
		return b.handleNotifications(ctx, msg)
	case "cancelar":
		b.sessions.clear(msg.Chat.ID)
		return b.sendText(msg.Chat.ID, "❌ Operación cancelada.")
	default:
		return b.sendText(msg.Chat.ID, "No conozco ese comando. Mira /ayuda para la lista completa.")
	}
}

func (b *Bot) handleStart(ctx context.Context, msg *tgbotapi.Message) error {
	couple, err := b.couples.Household(ctx)
	if err != nil {
		return b.replyError(msg.Chat.ID, err)
	}
	text := fmt.Sprintf(
		"👋 ¡Hola! Soy el asistente de finanzas de <b>%s</b>.\n\n"+
			"Registra ingresos y gastos de %s y %s sin salir de Telegram.\n\n"+
			"Comandos principales:\n"+
			"• /agregar — registrar una transacción\n"+
			"• /balance — balance del hogar\n"+
			"• /transacciones — últimos movimientos\n"+
			"• /ayuda — todos los comandos",
		html.EscapeString(couple.Name),
		html.EscapeString(couple.Person1Name),
		html.EscapeString(couple.Person2Name),
	)
	return b.sendText(msg.Chat.ID, text)
}

func (b *Bot) handleHelp(msg *tgbotapi.Message) error {
	text := "ℹ️ <b>Comandos disponibles</b>\n" +
		"• /agregar — registrar un ingreso o gasto paso a paso\n" +
		"• /balance — ingresos, gastos y balance del hogar\n" +
		"• /balance_personal — balance de cada persona\n" +
		"• /transacciones — últimas 10 transacciones\n" +
		"• /eliminar — cómo borrar una transacción\n" +
		"• /eliminar_id &lt;id&gt; — borrar la transacción con ese id\n" +
		"• /buscar &lt;texto&gt; — buscar por descripción\n" +
		"• /reporte — reporte del mes en curso\n" +
		"• /notificaciones — resumen diario sí/no\n" +
		"• /cancelar — abandonar el diálogo actual"
	return b.sendText(msg.Chat.ID, text)
}

func (b *Bot) handleBalance(ctx context.Context, msg *tgbotapi.Message) error {
	summary, err := b.statsSvc.Summary(ctx)
	if err != nil {
		return b.replyError(msg.Chat.ID, err)
	}
	text := fmt.Sprintf(
		"💰 <b>Balance del hogar</b>\n\n"+
			"📈 Ingresos: %s\n"+
			"📉 Gastos: %s\n"+
			"💵 Balance: %s\n\n"+
			"🧾 %d movimientos registrados",
		service.FormatCOP(summary.TotalIncome),
		service.FormatCOP(summary.TotalExpenses),
		service.FormatCOP(summary.Balance),
		summary.Transactions,
	)
	return b.sendText(msg.Chat.ID, text)
}

func (b *Bot) handlePersonalBalance(ctx context.Context, msg *tgbotapi.Message) error {
	couple, err := b.couples.Household(ctx)
	if err != nil {
		return b.replyError(msg.Chat.ID, err)
	}
	summary, err := b.statsSvc.Summary(ctx)
	if err != nil {
		return b.replyError(msg.Chat.ID, err)
	}
	text := fmt.Sprintf(
		"👥 <b>Balance por persona</b>\n\n"+
			"• %s: %s\n"+
			"• %s: %s",
		html.EscapeString(couple.Person1Name), service.FormatCOP(summary.Person1Balance),
		html.EscapeString(couple.Person2Name), service.FormatCOP(summary.Person2Balance),
	)
	return b.sendText(msg.Chat.ID, text)
}

func (b *Bot) handleTransactions(ctx context.Context, msg *tgbotapi.Message) error {
	txs, err := b.txSvc.Recent(ctx, 10)
	if err != nil {
		return b.replyError(msg.Chat.ID, err)
	}
	if len(txs) == 0 {
		return b.sendText(msg.Chat.ID, "Aún no hay transacciones. Usa /agregar para registrar la primera.")
	}
	couple, err := b.couples.Household(ctx)
	if err != nil {
		return b.replyError(msg.Chat.ID, err)
	}

	var builder strings.Builder
	builder.WriteString("🧾 <b>Últimas transacciones</b>\n\n")
	for _, tx := range txs {
		builder.WriteString(formatTransactionLine(tx, couple))
		builder.WriteByte('\n')
	}
	return b.sendText(msg.Chat.ID, strings.TrimSpace(builder.String()))
}

func (b *Bot) startAddConversation(msg *tgbotapi.Message) error {
	b.sessions.put(msg.Chat.ID, &conversationState{stage: stageType})
	return b.sendWithMarkup(msg.Chat.ID, "🆕 Nueva transacción.\n¿Qué tipo es?", typeKeyboard())
}

func (b *Bot) handleDeleteHelp(ctx context.Context, msg *tgbotapi.Message) error {
	txs, err := b.txSvc.Recent(ctx, 5)
	if err != nil {
		return b.replyError(msg.Chat.ID, err)
	}
	if len(txs) == 0 {
		return b.sendText(msg.Chat.ID, "No hay transacciones para eliminar.")
	}
	couple, err := b.couples.Household(ctx)
	if err != nil {
		return b.replyError(msg.Chat.ID, err)
	}

	var builder strings.Builder
	builder.WriteString("🗑 <b>Eliminar una transacción</b>\n")
	builder.WriteString("Envía <code>/eliminar_id &lt;id&gt;</code> con el id de la lista:\n\n")
	for _, tx := range txs {
		builder.WriteString(formatTransactionLine(tx, couple))
		builder.WriteByte('\n')
	}
	return b.sendText(msg.Chat.ID, strings.TrimSpace(builder.String()))
}

func (b *Bot) handleDeleteByID(ctx context.Context, msg *tgbotapi.Message) error {
	args := strings.TrimSpace(msg.CommandArguments())
	if args == "" {
		return b.sendText(msg.Chat.ID, "Indica el id: /eliminar_id 12")
	}
	id64, err := strconv.ParseUint(args, 10, 64)
	if err != nil {
		return b.sendText(msg.Chat.ID, "El id debe ser un número. Mira /eliminar para ver los ids.")
	}

	if err := b.txSvc.Delete(ctx, uint(id64)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return b.sendText(msg.Chat.ID, "No encontré una transacción con ese id.")
		}
		return b.replyError(msg.Chat.ID, err)
	}
	return b.sendText(msg.Chat.ID, fmt.Sprintf("🗑 Transacción #%d eliminada.", id64))
}

func (b *Bot) handleReport(ctx context.Context, msg *tgbotapi.Message) error {
	text, err := b.reportSvc.MonthlyReport(ctx, time.Now())
	if err != nil {
		return b.replyError(msg.Chat.ID, err)
	}
	return b.sendText(msg.Chat.ID, text)
}

func (b *Bot) handleSearch(ctx context.Context, msg *tgbotapi.Message) error {
	query := strings.TrimSpace(msg.CommandArguments())
	if query == "" {
		return b.sendText(msg.Chat.ID, "Indica qué buscar: /buscar mercado")
	}
	txs, err := b.txSvc.Search(ctx, query, 10)
	if err != nil {
		return b.replyError(msg.Chat.ID, err)
	}
	if len(txs) == 0 {
		return b.sendText(msg.Chat.ID, fmt.Sprintf("Sin resultados para «%s».", html.EscapeString(query)))
	}
	couple, err := b.couples.Household(ctx)
	if err != nil {
		return b.replyError(msg.Chat.ID, err)
	}

	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("🔍 <b>Resultados para «%s»</b>\n\n", html.EscapeString(query)))
	for _, tx := range txs {
		builder.WriteString(formatTransactionLine(tx, couple))
		builder.WriteByte('\n')
	}
	return b.sendText(msg.Chat.ID, strings.TrimSpace(builder.String()))
}

func (b *Bot) handleNotifications(ctx context.Context, msg *tgbotapi.Message) error {
	enabled, err := b.subs.IsEnabled(ctx, msg.Chat.ID)
	if err != nil {
		return b.replyError(msg.Chat.ID, err)
	}
	status := "desactivado"
	if enabled {
		status = "activado"
	}
	text := fmt.Sprintf("🔔 El resumen diario está <b>%s</b> para este chat.", status)
	return b.sendWithMarkup(msg.Chat.ID, text, notificationsKeyboard())
}

func (b *Bot) handleConversation(ctx context.Context, msg *tgbotapi.Message, state *conversationState) error {
	text := strings.TrimSpace(msg.Text)
	switch state.stage {
	case stageAmount:
		amount, err := parseAmount(text)
		if err != nil {
			log.Infof("invalid amount from chat %d: %v", msg.Chat.ID, err)
			return b.sendText(msg.Chat.ID, "Ese monto no me sirve. Escribe solo números, por ejemplo: 15000")
		}
		state.draft.amount = amount
		state.stage = stageDescription
		b.sessions.put(msg.Chat.ID, state)
		return b.sendText(msg.Chat.ID, "📝 Por último, escribe una descripción:")
	case stageDescription:
		return b.finishTransaction(ctx, msg.Chat.ID, state, text)
	default:
		return b.sendText(msg.Chat.ID, "Usa los botones del mensaje anterior para continuar, o /cancelar para salir.")
	}
}

// finishTransaction persists the drafted transaction. The session is cleared
// whether or not the persist succeeds, so a failed save never traps the chat.
func (b *Bot) finishTransaction(ctx context.Context, chatID int64, state *conversationState, description string) error {
	defer b.sessions.clear(chatID)

	d := state.draft
	if d.txType == "" || d.person == "" || d.category == "" || d.amount <= 0 || description == "" {
		log.Warnf("incomplete draft for chat %d, aborting", chatID)
		return b.sendText(chatID, msgGenericError)
	}

	tx, err := b.txSvc.Create(ctx, service.TransactionInput{
		Amount:      d.amount,
		Description: description,
		Category:    d.category,
		Type:        d.txType,
		Person:      d.person,
	})
	if err != nil {
		return b.replyError(chatID, err)
	}

	couple, err := b.couples.Household(ctx)
	if err != nil {
		return b.replyError(chatID, err)
	}

	log.Infof("transaction %d created from chat %d", tx.ID, chatID)

	icon := "📉"
	if tx.Type == model.TypeIncome {
		icon = "📈"
	}
	text := fmt.Sprintf(
		"✅ <b>Transacción guardada</b>\n\n"+
			"%s %s\n"+
			"💵 %s\n"+
			"🏷 %s\n"+
			"👤 %s\n"+
			"📝 %s",
		icon, labelForType(tx.Type),
		service.FormatCOP(tx.Amount),
		model.CategoryName(tx.Type, tx.Category),
		html.EscapeString(couple.PersonName(tx.Person)),
		html.EscapeString(tx.Description),
	)
	return b.sendText(chatID, text)
}

func (b *Bot) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) error {
	if cb.Message == nil {
		return nil
	}
	chatID := cb.Message.Chat.ID
	data := cb.Data

	if data == cbNotifEnable || data == cbNotifDisable {
		return b.handleNotifCallback(ctx, cb, chatID, data == cbNotifEnable)
	}

	state, ok := b.sessions.get(chatID)
	if !ok {
		return b.answerCallback(cb, msgSessionExpired)
	}

	switch {
	case strings.HasPrefix(data, cbTypePrefix):
		return b.handleTypeCallback(ctx, cb, chatID, state, strings.TrimPrefix(data, cbTypePrefix))
	case strings.HasPrefix(data, cbPersonPrefix):
		return b.handlePersonCallback(cb, chatID, state, strings.TrimPrefix(data, cbPersonPrefix))
	case strings.HasPrefix(data, cbCategoryPrefix):
		return b.handleCategoryCallback(cb, chatID, state, strings.TrimPrefix(data, cbCategoryPrefix))
	default:
		return b.answerCallback(cb, msgSessionExpired)
	}
}

func (b *Bot) handleNotifCallback(ctx context.Context, cb *tgbotapi.CallbackQuery, chatID int64, enable bool) error {
	if err := b.subs.Set(ctx, chatID, enable); err != nil {
		log.Errorf("set subscription for chat %d: %v", chatID, err)
		return b.answerCallback(cb, "No pude guardar la preferencia.")
	}
	if err := b.answerCallback(cb, ""); err != nil {
		return err
	}
	if enable {
		return b.sendText(chatID, "🔔 Resumen diario activado. Te escribiré cada mañana.")
	}
	return b.sendText(chatID, "🔕 Resumen diario desactivado.")
}

func (b *Bot) handleTypeCallback(ctx context.Context, cb *tgbotapi.CallbackQuery, chatID int64, state *conversationState, value string) error {
	if state.stage != stageType || (value != model.TypeIncome && value != model.TypeExpense) {
		return b.answerCallback(cb, msgSessionExpired)
	}
	state.draft.txType = value
	state.stage = stagePerson
	b.sessions.put(chatID, state)

	couple, err := b.couples.Household(ctx)
	if err != nil {
		b.sessions.clear(chatID)
		if answerErr := b.answerCallback(cb, ""); answerErr != nil {
			return answerErr
		}
		return b.replyError(chatID, err)
	}
	if err := b.answerCallback(cb, ""); err != nil {
		return err
	}
	return b.sendWithMarkup(chatID, "👤 ¿De quién es el movimiento?", personKeyboard(couple))
}

func (b *Bot) handlePersonCallback(cb *tgbotapi.CallbackQuery, chatID int64, state *conversationState, value string) error {
	if state.stage != stagePerson || (value != model.PersonOne && value != model.PersonTwo) {
		return b.answerCallback(cb, msgSessionExpired)
	}
	state.draft.person = value
	state.stage = stageCategory
	b.sessions.put(chatID, state)

	if err := b.answerCallback(cb, ""); err != nil {
		return err
	}
	return b.sendWithMarkup(chatID, "🏷 Elige una categoría:", categoryKeyboard(state.draft.txType))
}

func (b *Bot) handleCategoryCallback(cb *tgbotapi.CallbackQuery, chatID int64, state *conversationState, value string) error {
	if state.stage != stageCategory || !model.ValidCategory(state.draft.txType, value) {
		return b.answerCallback(cb, msgSessionExpired)
	}
	state.draft.category = value
	state.stage = stageAmount
	b.sessions.put(chatID, state)

	if err := b.answerCallback(cb, ""); err != nil {
		return err
	}
	return b.sendText(chatID, "💵 ¿Cuál es el monto? Escribe solo números:")
}

// SendDailySummaries builds the daily summary once and delivers it to every
// subscribed chat. Invoked by the cron scheduler.
func (b *Bot) SendDailySummaries(ctx context.Context) error {
	subs, err := b.subs.ListEnabled(ctx)
	if err != nil {
		return fmt.Errorf("list subscriptions: %w", err)
	}
	if len(subs) == 0 {
		return nil
	}

	text, err := b.reportSvc.DailySummary(ctx, time.Now())
	if err != nil {
		return fmt.Errorf("build daily summary: %w", err)
	}

	for _, sub := range subs {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if err := b.sendText(sub.ChatID, text); err != nil {
			log.Errorf("send summary to chat %d: %v", sub.ChatID, err)
		}
	}
	return nil
}

func (b *Bot) replyError(chatID int64, err error) error {
	log.Errorf("chat %d: %v", chatID, err)
	if repository.IsUndefinedTable(err) {
		return b.sendText(chatID, msgSetupMissing)
	}
	return b.sendText(chatID, msgGenericError)
}

func (b *Bot) sendText(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	_, err := b.tg.Send(msg)
	return err
}

func (b *Bot) sendWithMarkup(chatID int64, text string, markup tgbotapi.InlineKeyboardMarkup) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.ReplyMarkup = markup
	_, err := b.tg.Send(msg)
	return err
}

func (b *Bot) answerCallback(cb *tgbotapi.CallbackQuery, text string) error {
	_, err := b.tg.Request(tgbotapi.NewCallback(cb.ID, text))
	return err
}

func typeKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📈 Ingreso", cbTypePrefix+model.TypeIncome),
			tgbotapi.NewInlineKeyboardButtonData("📉 Gasto", cbTypePrefix+model.TypeExpense),
		),
	)
}

func personKeyboard(couple *model.Couple) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(couple.Person1Name, cbPersonPrefix+model.PersonOne),
			tgbotapi.NewInlineKeyboardButtonData(couple.Person2Name, cbPersonPrefix+model.PersonTwo),
		),
	)
}

func categoryKeyboard(txType string) tgbotapi.InlineKeyboardMarkup {
	categories := model.CategoriesForType(txType)
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, (len(categories)+1)/2)
	for i := 0; i < len(categories); i += 2 {
		row := []tgbotapi.InlineKeyboardButton{
			tgbotapi.NewInlineKeyboardButtonData(categories[i].Name, cbCategoryPrefix+categories[i].ID),
		}
		if i+1 < len(categories) {
			row = append(row, tgbotapi.NewInlineKeyboardButtonData(categories[i+1].Name, cbCategoryPrefix+categories[i+1].ID))
		}
		rows = append(rows, row)
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func notificationsKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔔 Activar", cbNotifEnable),
			tgbotapi.NewInlineKeyboardButtonData("🔕 Desactivar", cbNotifDisable),
		),
	)
}

func labelForType(txType string) string {
	if txType == model.TypeIncome {
		return "Ingreso"
	}
	return "Gasto"
}

func formatTransactionLine(tx model.Transaction, couple *model.Couple) string {
	icon := "📉"
	if tx.Type == model.TypeIncome {
		icon = "📈"
	}
	return fmt.Sprintf("%s <b>#%d</b> %s — %s (%s, %s)",
		icon,
		tx.ID,
		service.FormatCOP(tx.Amount),
		html.EscapeString(tx.Description),
		html.EscapeString(couple.PersonName(tx.Person)),
		tx.TransactionDate.Format("02/01/2006"),
	)
}
