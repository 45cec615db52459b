package sqlinline

const QInsertBookDonation = `--sql 5c1d4f0a-8e3b-4f6d-9a2c-1b7e8d0f3a51
insert into book_donations (name, email, book_title, description)
values (?, ?, ?, ?);
`

const QListBookDonations = `--sql 0f82b6d4-1a9e-4c35-b7d8-6e4a2c901f37
select id, name, email, book_title, description, date_added
from book_donations
order by date_added desc, id desc;
`
