package web

import (
	"encoding/json"
	"net/http"

	"clubdesk/internal/application/listutil"
	"clubdesk/internal/application/orchestrators"
	"clubdesk/internal/application/projections"
	"clubdesk/internal/domain/billing"
)

// --- Invoices (read-only; the backend issues them) ---

var invoiceSortCols = []string{"invoice_number", "total_amount", "due_amount", "status", "issue_date"}

func handleInvoiceList(w http.ResponseWriter, r *http.Request) {
	lp := listutil.ParseListParams(r.URL.Query(), invoiceSortCols, []string{"status", "invoice_type"})

	result, err := projections.QueryGetInvoiceList(r.Context(),
		projections.GetInvoiceListQuery{Params: lp},
		projections.GetInvoiceListDeps{Backend: backendFor(r)})
	if err != nil {
		renderTemplate(w, r, "invoice_list.html", map[string]any{
			"Title":  "Invoices",
			"Notice": noticeText(err),
			"Params": lp,
		})
		return
	}

	if !isHTMLRequest(r) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(result)
		return
	}

	renderTemplate(w, r, "invoice_list.html", map[string]any{
		"Title":          "Invoices",
		"Invoices":       result.Invoices,
		"PageInfo":       result.Page,
		"Params":         lp,
		"Statuses":       billing.Statuses,
		"PerPageOptions": listutil.PerPageOptions,
	})
}

func handleInvoiceDetail(w http.ResponseWriter, r *http.Request) {
	result, err := projections.QueryGetInvoiceDetail(r.Context(),
		projections.GetInvoiceDetailQuery{InvoiceID: r.PathValue("id")},
		projections.GetInvoiceListDeps{Backend: backendFor(r)})
	if err != nil {
		handleUpstreamError(w, r, err)
		return
	}

	renderTemplate(w, r, "invoice_detail.html", map[string]any{
		"Title":    "Invoice " + result.Invoice.InvoiceNumber,
		"Invoice":  result.Invoice,
		"Payments": result.Payments,
	})
}

// --- Payments ---

var paymentSortCols = []string{"amount", "payment_method", "status", "payment_date"}

func handlePaymentList(w http.ResponseWriter, r *http.Request) {
	lp := listutil.ParseListParams(r.URL.Query(), paymentSortCols, []string{"payment_method", "status"})

	result, err := projections.QueryGetPaymentList(r.Context(),
		projections.GetPaymentListQuery{Params: lp},
		projections.GetPaymentListDeps{Backend: backendFor(r), Choices: deps.Choices})
	if err != nil {
		renderTemplate(w, r, "payment_list.html", map[string]any{
			"Title":  "Payments",
			"Notice": noticeText(err),
			"Params": lp,
		})
		return
	}

	if !isHTMLRequest(r) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(result)
		return
	}

	renderTemplate(w, r, "payment_list.html", map[string]any{
		"Title":          "Payments",
		"Payments":       result.Payments,
		"PageInfo":       result.Page,
		"Params":         lp,
		"Methods":        result.Methods,
		"PerPageOptions": listutil.PerPageOptions,
		"Notice":         noticeText(result.ChoiceErr),
	})
}

func paymentFormPage(w http.ResponseWriter, r *http.Request, form billing.PaymentForm, errs map[string][]string, notice string) {
	renderTemplate(w, r, "payment_form.html", map[string]any{
		"Title":  "Record payment",
		"Form":   form,
		"Errors": errs,
		"Notice": notice,
	})
}

func handlePaymentNew(w http.ResponseWriter, r *http.Request) {
	// Prefill the invoice when the link came from an invoice screen.
	form := billing.PaymentForm{
		InvoiceID: r.URL.Query().Get("invoice"),
		MemberID:  r.URL.Query().Get("member"),
	}
	paymentFormPage(w, r, form, nil, "")
}

func handlePaymentCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}
	input := orchestrators.SavePaymentInput{
		Form: billing.PaymentForm{
			MemberID:  r.FormValue("member"),
			InvoiceID: r.FormValue("invoice"),
			Amount:    r.FormValue("amount"),
			Method:    r.FormValue("payment_method"),
			Notes:     r.FormValue("notes"),
		},
	}

	result, fieldErrs, err := orchestrators.ExecuteSavePayment(r.Context(), input,
		orchestrators.SavePaymentDeps{Backend: backendFor(r)})
	if err != nil {
		paymentFormPage(w, r, input.Form, nil, noticeText(err))
		return
	}
	if !fieldErrs.Empty() {
		paymentFormPage(w, r, input.Form, fieldErrs, "")
		return
	}

	setFlash(w, "Payment recorded.")
	http.Redirect(w, r, "/payments/"+result.Payment.ID+"/receipt", http.StatusSeeOther)
}

// handlePaymentReceipt renders the printable receipt screen.
func handlePaymentReceipt(w http.ResponseWriter, r *http.Request) {
	result, err := projections.QueryGetPaymentDetail(r.Context(),
		projections.GetPaymentDetailQuery{PaymentID: r.PathValue("id")},
		projections.GetPaymentListDeps{Backend: backendFor(r)})
	if err != nil {
		handleUpstreamError(w, r, err)
		return
	}

	renderTemplate(w, r, "payment_receipt.html", map[string]any{
		"Title":   "Receipt",
		"Payment": result.Payment,
	})
}

// handlePaymentEmailReceipt sends the receipt to the member, or to the
// address typed into the override field.
func handlePaymentEmailReceipt(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}
	paymentID := r.PathValue("id")
	input := orchestrators.EmailReceiptInput{
		PaymentID:  paymentID,
		ToOverride: r.FormValue("to"),
	}

	result, err := orchestrators.ExecuteEmailReceipt(r.Context(), input,
		orchestrators.EmailReceiptDeps{Backend: backendFor(r), Sender: emailSender})
	if err != nil {
		setFlash(w, "Receipt email failed: "+noticeText(err))
		http.Redirect(w, r, "/payments/"+paymentID+"/receipt", http.StatusSeeOther)
		return
	}

	setFlash(w, "Receipt emailed to "+result.SentTo+".")
	http.Redirect(w, r, "/payments/"+paymentID+"/receipt", http.StatusSeeOther)
}

// --- Sales (read-only; recorded at the point of sale) ---

var saleSortCols = []string{"total_amount", "status", "sale_date"}

func handleSaleList(w http.ResponseWriter, r *http.Request) {
	lp := listutil.ParseListParams(r.URL.Query(), saleSortCols, []string{"status", "restaurant"})

	result, err := projections.QueryGetSaleList(r.Context(),
		projections.GetSaleListQuery{Params: lp},
		projections.GetSaleListDeps{Backend: backendFor(r)})
	if err != nil {
		renderTemplate(w, r, "sale_list.html", map[string]any{
			"Title":  "Sales",
			"Notice": noticeText(err),
			"Params": lp,
		})
		return
	}

	if !isHTMLRequest(r) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(result)
		return
	}

	renderTemplate(w, r, "sale_list.html", map[string]any{
		"Title":          "Sales",
		"Sales":          result.Sales,
		"PageInfo":       result.Page,
		"Params":         lp,
		"PerPageOptions": listutil.PerPageOptions,
	})
}

func handleSaleDetail(w http.ResponseWriter, r *http.Request) {
	result, err := projections.QueryGetSaleDetail(r.Context(),
		projections.GetSaleDetailQuery{SaleID: r.PathValue("id")},
		projections.GetSaleListDeps{Backend: backendFor(r)})
	if err != nil {
		handleUpstreamError(w, r, err)
		return
	}

	renderTemplate(w, r, "sale_detail.html", map[string]any{
		"Title": "Sale",
		"Sale":  result.Sale,
		"Total": result.Total,
	})
}

// --- Incomes ---

var incomeSortCols = []string{"source", "amount", "status", "received_date"}

func handleIncomeList(w http.ResponseWriter, r *http.Request) {
	lp := listutil.ParseListParams(r.URL.Query(), incomeSortCols, []string{"status"})

	result, err := projections.QueryGetIncomeList(r.Context(),
		projections.GetIncomeListQuery{Params: lp},
		projections.GetIncomeListDeps{Backend: backendFor(r)})
	if err != nil {
		renderTemplate(w, r, "income_list.html", map[string]any{
			"Title":  "Incomes",
			"Notice": noticeText(err),
			"Params": lp,
		})
		return
	}

	if !isHTMLRequest(r) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(result)
		return
	}

	renderTemplate(w, r, "income_list.html", map[string]any{
		"Title":          "Incomes",
		"Incomes":        result.Incomes,
		"PageInfo":       result.Page,
		"Params":         lp,
		"Statuses":       billing.Statuses,
		"PerPageOptions": listutil.PerPageOptions,
	})
}

func incomeFormPage(w http.ResponseWriter, r *http.Request, incomeID string, form billing.IncomeForm, errs map[string][]string, notice string) {
	renderTemplate(w, r, "income_form.html", map[string]any{
		"Title":    formTitle(incomeID, "New income", "Edit income"),
		"IncomeID": incomeID,
		"Form":     form,
		"Errors":   errs,
		"Notice":   notice,
		"Statuses": billing.Statuses,
	})
}

func handleIncomeNew(w http.ResponseWriter, r *http.Request) {
	incomeFormPage(w, r, "", billing.IncomeForm{}, nil, "")
}

func handleIncomeEdit(w http.ResponseWriter, r *http.Request) {
	result, err := projections.QueryGetIncomeDetail(r.Context(),
		projections.GetIncomeDetailQuery{IncomeID: r.PathValue("id")},
		projections.GetIncomeListDeps{Backend: backendFor(r)})
	if err != nil {
		handleUpstreamError(w, r, err)
		return
	}

	inc := result.Income
	form := billing.IncomeForm{
		Source: inc.Source,
		Amount: inc.Amount,
		Status: inc.Status,
	}
	incomeFormPage(w, r, inc.ID, form, nil, "")
}

func handleIncomeSave(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}
	incomeID := r.PathValue("id")
	input := orchestrators.SaveIncomeInput{
		IncomeID: incomeID,
		Form: billing.IncomeForm{
			Source: r.FormValue("source"),
			Amount: r.FormValue("amount"),
			Status: r.FormValue("status"),
		},
	}

	_, fieldErrs, err := orchestrators.ExecuteSaveIncome(r.Context(), input,
		orchestrators.SavePaymentDeps{Backend: backendFor(r)})
	if err != nil {
		incomeFormPage(w, r, incomeID, input.Form, nil, noticeText(err))
		return
	}
	if !fieldErrs.Empty() {
		incomeFormPage(w, r, incomeID, input.Form, fieldErrs, "")
		return
	}

	setFlash(w, savedFlash(incomeID, "Income recorded.", "Income updated."))
	http.Redirect(w, r, "/incomes", http.StatusSeeOther)
}

func handleIncomeDeleteConfirm(w http.ResponseWriter, r *http.Request) {
	result, err := projections.QueryGetIncomeDetail(r.Context(),
		projections.GetIncomeDetailQuery{IncomeID: r.PathValue("id")},
		projections.GetIncomeListDeps{Backend: backendFor(r)})
	if err != nil {
		handleUpstreamError(w, r, err)
		return
	}

	renderTemplate(w, r, "confirm_delete.html", map[string]any{
		"Title":      "Delete income",
		"What":       result.Income.Source,
		"ActionPath": "/incomes/" + result.Income.ID + "/delete",
		"CancelPath": "/incomes",
	})
}

func handleIncomeDelete(w http.ResponseWriter, r *http.Request) {
	err := orchestrators.ExecuteDeleteIncome(r.Context(),
		orchestrators.DeleteIncomeInput{IncomeID: r.PathValue("id")},
		orchestrators.SavePaymentDeps{Backend: backendFor(r)})
	if err != nil {
		handleUpstreamError(w, r, err)
		return
	}

	setFlash(w, "Income deleted.")
	http.Redirect(w, r, "/incomes", http.StatusSeeOther)
}

// --- Transactions (read-only ledger) ---

var transactionSortCols = []string{"amount", "transaction_type", "status", "transaction_date"}

func handleTransactionList(w http.ResponseWriter, r *http.Request) {
	lp := listutil.ParseListParams(r.URL.Query(), transactionSortCols, []string{"transaction_type", "status"})

	result, err := projections.QueryGetTransactionList(r.Context(),
		projections.GetTransactionListQuery{Params: lp},
		projections.GetTransactionListDeps{Backend: backendFor(r)})
	if err != nil {
		renderTemplate(w, r, "transaction_list.html", map[string]any{
			"Title":  "Transactions",
			"Notice": noticeText(err),
			"Params": lp,
		})
		return
	}

	if !isHTMLRequest(r) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(result)
		return
	}

	renderTemplate(w, r, "transaction_list.html", map[string]any{
		"Title":          "Transactions",
		"Transactions":   result.Transactions,
		"PageInfo":       result.Page,
		"Params":         lp,
		"PerPageOptions": listutil.PerPageOptions,
	})
}
